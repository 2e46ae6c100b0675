package domain

import "context"

// LineReader reads one line of user input after showing a prompt.
// Implementations can be a full-screen terminal UI, a plain line editor,
// or a scripted reader in tests. ReadLine returns io.EOF when input ends
// and ErrAborted when the user cancels.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// TallySource exposes the running totals of the recipe being entered.
// ok is false before a recipe has been started.
type TallySource interface {
	Tally() (t Tally, ok bool)
}
