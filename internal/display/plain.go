package display

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/hammamikhairi/costcook/internal/domain"
)

var _ domain.LineReader = (*PlainReader)(nil)

// PlainReader reads answers with line editing, history and tab completion
// of unit names. It is used when stdin is not a terminal the full UI can
// take over, or when -plain is given.
type PlainReader struct {
	state       *liner.State
	words       []string
	historyFile string
}

// NewPlainReader takes over the terminal line discipline until Close.
// words feed tab completion; historyFile may be empty to disable history.
func NewPlainReader(words []string, historyFile string) *PlainReader {
	p := &PlainReader{
		state:       liner.NewLiner(),
		words:       words,
		historyFile: historyFile,
	}
	p.state.SetCtrlCAborts(true)
	p.state.SetCompleter(p.complete)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			p.state.ReadHistory(f)
			f.Close()
		}
	}
	return p
}

// ReadLine shows prompt inline and reads one answer.
// Ctrl+C maps to domain.ErrAborted and Ctrl+D to io.EOF.
func (p *PlainReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.state.Prompt(prompt + " ")
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", domain.ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (p *PlainReader) Close() error {
	if p.historyFile != "" {
		if f, err := os.Create(p.historyFile); err == nil {
			p.state.WriteHistory(f)
			f.Close()
		}
	}
	return p.state.Close()
}

func (p *PlainReader) complete(line string) []string {
	return completions(p.words, line)
}

// completions returns the words that extend the last token of line.
func completions(words []string, line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return nil
	}
	last := strings.ToLower(trimmed)

	var matches []string
	for _, w := range words {
		if strings.HasPrefix(w, last) {
			matches = append(matches, w)
		}
	}
	return matches
}
