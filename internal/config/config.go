// Package config loads command-line flags, with defaults taken from the
// environment (and a .env file, if present).
package config

import (
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/costcook/internal/money"
)

// Env var names read at startup. Flags override them.
const (
	EnvCurrency = "COSTCOOK_CURRENCY"
	EnvLocale   = "COSTCOOK_LOCALE"
	EnvLogFile  = "COSTCOOK_LOG_FILE"
)

// DefaultLogFile is where logs go unless -log-file says otherwise.
const DefaultLogFile = ".costcook-logs/costcook.log"

// Config holds the runtime settings.
type Config struct {
	Verbose  bool
	Quiet    bool
	LogFile  string // "stderr" logs to the console
	Plain    bool   // line-editor prompt instead of the full-screen UI
	NoIntro  bool   // skip the instructions question
	Currency string
	Locale   string
}

// LoadDotEnv reads .env files into the process environment. Missing files
// are not an error.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load parses args (without the program name). Environment variables must
// already be set; call LoadDotEnv first to pick up a .env file.
func Load(args []string, errOut io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("costcook", flag.ContinueOnError)
	if errOut != nil {
		fs.SetOutput(errOut)
	}
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose/debug logging")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "disable all logging")
	fs.StringVar(&cfg.LogFile, "log-file", envOr(EnvLogFile, DefaultLogFile), "file to write logs to (use \"stderr\" to log to console)")
	fs.BoolVar(&cfg.Plain, "plain", false, "use a plain line prompt instead of the full-screen UI")
	fs.BoolVar(&cfg.NoIntro, "no-intro", false, "skip the instructions question")
	fs.StringVar(&cfg.Currency, "currency", envOr(EnvCurrency, money.DefaultSymbol), "currency symbol shown before costs")
	fs.StringVar(&cfg.Locale, "locale", envOr(EnvLocale, "en"), "locale used for digit grouping (BCP 47 tag)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
