package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvLogFile, "")

	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "$" {
		t.Errorf("currency = %q, want $", cfg.Currency)
	}
	if cfg.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.Locale)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("log file = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
	if cfg.Verbose || cfg.Quiet || cfg.Plain || cfg.NoIntro {
		t.Errorf("expected boolean flags off, got %+v", cfg)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"-verbose", "-plain", "-no-intro", "-currency", "€", "-log-file", "stderr"}, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Verbose || !cfg.Plain || !cfg.NoIntro {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Currency != "€" {
		t.Errorf("currency = %q, want €", cfg.Currency)
	}
	if cfg.LogFile != "stderr" {
		t.Errorf("log file = %q, want stderr", cfg.LogFile)
	}
}

func TestLoadEnvThenFlagOverride(t *testing.T) {
	t.Setenv(EnvCurrency, "£")
	t.Setenv(EnvLocale, "en-GB")

	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "£" || cfg.Locale != "en-GB" {
		t.Fatalf("env not applied: %+v", cfg)
	}

	cfg, err = Load([]string{"-currency", "NZ$"}, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "NZ$" {
		t.Fatalf("flag should override env, got %q", cfg.Currency)
	}
}

func TestLoadBadFlag(t *testing.T) {
	if _, err := Load([]string{"-nope"}, io.Discard); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvLocale+"=de\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLocale, "") // registers cleanup; godotenv does not override set vars
	os.Unsetenv(EnvLocale)

	LoadDotEnv(path)

	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "de" {
		t.Fatalf("locale = %q, want de from .env", cfg.Locale)
	}
}
