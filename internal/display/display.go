// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a running-total status bar and an input prompt
// at the bottom of the terminal. All application output is printed above
// the rendered area via Program.Println / Printf, ensuring concurrent
// writes never garble the display.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/money"
)

// Compile-time interface checks.
var (
	_ domain.LineReader = (*UI)(nil)
	_ domain.Notifier   = (*UI)(nil)
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle is the muted slate of the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Soft sky blue for questions and messages.
	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Soft mint for headings.
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// Light zinc for table cells.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Dimmed zinc for hints.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Soft coral for validation errors.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

const promptText = "cost> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely call
// [UI.Println], [UI.Printf] and [UI.ReadLine] once [UI.Ready] is closed.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	tally   domain.TallySource
	money   *money.Formatter
	done    atomic.Bool
}

// NewUI creates the display. tally feeds the status bar and may be nil.
// Call Run() to start.
func NewUI(tally domain.TallySource, m *money.Formatter) *UI {
	if m == nil {
		m = money.Default()
	}
	return &UI{
		tally:   tally,
		money:   m,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Track sets the source of the status bar. Call before Run.
func (u *UI) Track(src domain.TallySource) { u.tally = src }

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
// The output is printed on its own line.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// ReadLine shows prompt above the input line and waits for the user to
// press enter. It returns domain.ErrAborted once the UI has quit.
func (u *UI) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		u.PrintChat(prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-u.quitCh:
		return "", domain.ErrAborted
	case line := <-u.inputCh:
		return line, nil
	}
}

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a question or conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// Notify prints a conversational message.
func (u *UI) Notify(ctx context.Context, message string) error {
	u.PrintChat(message)
	return nil
}

// NotifyUrgent prints a validation error.
func (u *UI) NotifyUrgent(ctx context.Context, message string) error {
	u.PrintUrgent(message)
	return nil
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints a validation error.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed answer into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("cost") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// Ready is closed once the Bubble Tea event loop is running.
func (u *UI) Ready() <-chan struct{} { return u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	u.program = tea.NewProgram(u.newModel())
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

func (u *UI) newModel() model {
	ti := textinput.New()
	// Plain-text prompt: lipgloss-styled prompts add ANSI bytes that break
	// the textinput width math.
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	return model{
		tallySrc: u.tally,
		money:    u.money,
		input:    ti,
		inputCh:  u.inputCh,
		readyCh:  u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	tallySrc domain.TallySource
	money    *money.Formatter
	input    textinput.Model
	inputCh  chan<- string
	readyCh  chan struct{}
	echoFn   func(string) // prints user input into scrollback
	tally    domain.Tally
	hasTally bool
	width    int
}

// Messages.
type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			// Empty answers are sent too: the interview explains why a
			// blank name is not accepted.
			v := m.input.Value()
			m.input.Reset()
			select {
			case m.inputCh <- v:
			default:
				// Nobody is reading; never stall the event loop.
				return m, nil
			}
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(promptText) {
			m.input.Width = msg.Width - len(promptText)
		}
		return m, nil

	case tickMsg:
		m.refreshTally()
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(m.titleStr()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) refreshTally() {
	if m.tallySrc == nil {
		return
	}
	m.tally, m.hasTally = m.tallySrc.Tally()
}

func (m model) titleStr() string {
	if !m.hasTally {
		return "CostCook"
	}
	return "CostCook · " + m.tally.RecipeName + " · " + m.money.Format(m.tally.TotalCost)
}

func (m model) View() string {
	var b strings.Builder

	if m.hasTally {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	t := m.tally
	perServing := 0.0
	if t.Servings > 0 {
		perServing = t.TotalCost / float64(t.Servings)
	}

	parts := []string{
		labelStyle.Render(t.RecipeName),
		labelStyle.Render(fmt.Sprintf("%d serving(s)", t.Servings)),
		labelStyle.Render(fmt.Sprintf("%d ingredient(s)", t.Ingredients)),
		labelStyle.Render("total: ") + totalStyle.Render(m.money.Format(t.TotalCost)),
		labelStyle.Render("per serving: ") + totalStyle.Render(m.money.Format(perServing)),
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
