package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug line %d", 1)
			log.Info("info line %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "[DBG]"); got != tt.wantDebug {
				t.Errorf("debug present=%v, want %v (out=%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF]"); got != tt.wantInfo {
				t.Errorf("info present=%v, want %v (out=%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestWithPrefixesComponent(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	child := root.With("engine").With("ledger")

	child.Warn("total is %s", "$1.70")

	out := buf.String()
	if !strings.Contains(out, "[WRN]") {
		t.Fatalf("missing level prefix: %q", out)
	}
	if !strings.Contains(out, "engine.ledger: total is $1.70") {
		t.Fatalf("missing component prefix: %q", out)
	}
}

func TestChildSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	child := root.With("units")

	root.SetLevel(LevelOff)
	child.Error("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("expected no output after SetLevel(LevelOff), got %q", buf.String())
	}
	if child.GetLevel() != LevelOff {
		t.Fatalf("child level = %s, want off", child.GetLevel())
	}
}

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		verbose, quiet bool
		want           Level
	}{
		{false, false, LevelNormal},
		{true, false, LevelVerbose},
		{false, true, LevelOff},
		{true, true, LevelOff},
	}
	for _, tt := range tests {
		if got := LevelFromFlags(tt.verbose, tt.quiet); got != tt.want {
			t.Errorf("LevelFromFlags(%v, %v) = %s, want %s", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}
