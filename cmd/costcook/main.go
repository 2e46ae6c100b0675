// CostCook works out what a recipe costs, in total and per serving.
//
// Usage:
//
//	costcook [-verbose] [-quiet] [-plain] [-no-intro] [-currency $] [-locale en]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hammamikhairi/costcook/internal/config"
	"github.com/hammamikhairi/costcook/internal/conversation"
	"github.com/hammamikhairi/costcook/internal/costing"
	"github.com/hammamikhairi/costcook/internal/display"
	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/logger"
	"github.com/hammamikhairi/costcook/internal/money"
	"github.com/hammamikhairi/costcook/internal/units"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()

	// Third-party packages that use the standard logger write to the same
	// place so nothing leaks into the UI.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.LevelFromFlags(cfg.Verbose, cfg.Quiet), logOut)

	fm, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Warn("money formatter: %v (using defaults)", err)
		fm = money.Default()
	}

	table := units.Default()
	calc := costing.New(table, log.With("costing"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	opts := []conversation.Option{conversation.WithMoney(fm)}
	if cfg.NoIntro {
		opts = append(opts, conversation.WithoutIntro())
	}

	var view *domain.SummaryView
	if cfg.Plain || !display.Interactive() {
		view, err = runPlain(ctx, calc, log, opts)
	} else {
		view, err = runUI(ctx, calc, fm, log, opts)
	}

	switch {
	case err == nil:
		fmt.Println()
		fmt.Print(display.RenderSummary(view, fm))
	case errors.Is(err, domain.ErrAborted), errors.Is(err, context.Canceled):
		fmt.Println("\nCancelled.")
		closeLog()
		os.Exit(130)
	case errors.Is(err, io.EOF):
		fmt.Fprintln(os.Stderr, "\ninput ended before the recipe was complete")
		closeLog()
		os.Exit(1)
	default:
		log.Error("interview: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// runPlain drives the interview through a line editor. It also serves
// piped input, where liner falls back to plain reads.
func runPlain(ctx context.Context, calc *costing.Calculator, log *logger.Logger, opts []conversation.Option) (*domain.SummaryView, error) {
	interactive := display.Interactive()
	if interactive {
		fmt.Println(display.RenderBanner(0))
	}

	var words []string
	table := calc.Units()
	for _, c := range table.Categories() {
		words = append(words, table.Aliases(c)...)
	}
	words = append(words, conversation.Sentinel, "yes", "no")

	reader := display.NewPlainReader(words, filepath.Join(os.TempDir(), ".costcook_history"))
	defer reader.Close()

	notifier := conversation.NewCLINotifier(log.With("notify"), nil, interactive)
	iv := conversation.NewInterview(reader, notifier, calc, log.With("interview"), opts...)
	return iv.Run(ctx)
}

// runUI hands the terminal to Bubble Tea and runs the interview in the
// background. The summary is printed by the caller once the UI is gone.
func runUI(ctx context.Context, calc *costing.Calculator, fm *money.Formatter, log *logger.Logger, opts []conversation.Option) (*domain.SummaryView, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := display.NewUI(nil, fm)
	iv := conversation.NewInterview(ui, ui, calc, log.With("interview"), opts...)
	ui.Track(iv)

	fmt.Println(display.RenderBanner(0))
	ui.PrintHint("Press Ctrl+C to quit at any time.")
	fmt.Println()

	type result struct {
		view *domain.SummaryView
		err  error
	}
	done := make(chan result, 1)

	go func() {
		select {
		case <-ui.Ready():
		case <-ui.QuitChan():
			done <- result{err: domain.ErrAborted}
			return
		}
		view, err := iv.Run(ctx)
		done <- result{view, err}
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until the interview ends or the user
	// quits.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		cancel()
		return nil, fmt.Errorf("display: %w", err)
	}
	cancel()

	r := <-done
	return r.view, r.err
}

// openLog directs logs to a file by default so the prompt stays clean.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return os.Stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}
