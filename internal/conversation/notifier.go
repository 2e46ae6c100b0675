package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes notifications through a print function, optionally
// with ANSI colors.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
	color   bool
}

// NewCLINotifier creates a text notifier.
// If printFn is nil, fmt.Printf is used with a trailing newline.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc, color bool) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLINotifier{log: log, printFn: printFn, color: color}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	if !n.color {
		n.printFn("%s", message)
		return nil
	}
	n.printFn("%s%s%s", cyan, message, reset)
	return nil
}

// NotifyUrgent prints an urgent notification, bold red when colored.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	if !n.color {
		n.printFn("! %s", message)
		return nil
	}
	n.printFn("%s%s%s%s", red, bold, message, reset)
	return nil
}
