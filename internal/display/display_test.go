package display

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/money"
)

type fixedTally struct {
	t  domain.Tally
	ok bool
}

func (f fixedTally) Tally() (domain.Tally, bool) { return f.t, f.ok }

func TestModelStatusBar(t *testing.T) {
	src := fixedTally{ok: true, t: domain.Tally{
		RecipeName:  "Pancakes",
		Servings:    4,
		Ingredients: 2,
		TotalCost:   1.7,
	}}
	u := NewUI(src, money.Default())
	next, _ := u.newModel().Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	m := next.(model)

	if strings.Contains(m.View(), "Pancakes") {
		t.Fatal("status bar should stay hidden until the first tick")
	}

	next, _ = m.Update(tickMsg{})
	view := next.(model).View()
	for _, want := range []string{"Pancakes", "4 serving(s)", "2 ingredient(s)", "$1.70", "$0.43"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q:\n%s", want, view)
		}
	}
	if got := next.(model).titleStr(); got != "CostCook · Pancakes · $1.70" {
		t.Errorf("title = %q", got)
	}
}

func TestModelNoTallyYet(t *testing.T) {
	u := NewUI(fixedTally{}, nil)
	next, _ := u.newModel().Update(tickMsg{})
	if got := next.(model).titleStr(); got != "CostCook" {
		t.Errorf("title = %q, want CostCook", got)
	}
}

func TestModelEnterSendsLine(t *testing.T) {
	u := NewUI(nil, nil)
	m := u.newModel()
	m.input.SetValue("200")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case got := <-u.inputCh:
		if got != "200" {
			t.Errorf("sent %q, want 200", got)
		}
	default:
		t.Fatal("enter should send the typed line")
	}
	if v := next.(model).input.Value(); v != "" {
		t.Errorf("input not reset: %q", v)
	}
}

func TestModelEnterDoesNotBlockWhenUnread(t *testing.T) {
	u := NewUI(nil, nil)
	var m tea.Model = u.newModel()

	for i := 0; i < cap(u.inputCh)+4; i++ {
		mm := m.(model)
		mm.input.SetValue("xxx")
		m, _ = mm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	if n := len(u.inputCh); n != cap(u.inputCh) {
		t.Fatalf("queued %d lines, want %d", n, cap(u.inputCh))
	}

	// Quit is still handled once the queue is full.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

func TestReadLine(t *testing.T) {
	u := NewUI(nil, nil)
	u.inputCh <- "kg"

	got, err := u.ReadLine(context.Background(), "")
	if err != nil || got != "kg" {
		t.Fatalf("ReadLine = %q, %v", got, err)
	}

	close(u.quitCh)
	if _, err := u.ReadLine(context.Background(), ""); !errors.Is(err, domain.ErrAborted) {
		t.Fatalf("expected ErrAborted after quit, got %v", err)
	}
}

func TestReadLineCancelled(t *testing.T) {
	u := NewUI(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := u.ReadLine(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderSummary(t *testing.T) {
	v := &domain.SummaryView{
		RecipeName:     "Pancakes",
		Servings:       4,
		TotalCost:      1.7,
		CostPerServing: 0.425,
		Rows: []domain.SummaryRow{
			{Name: "Flour", AmountUsed: "200.00 g", TotalCost: 0.8, CostPerServing: 0.2},
			{Name: "Milk", AmountUsed: "300.00 ml", TotalCost: 0.9, CostPerServing: 0.225},
		},
	}

	out := RenderSummary(v, money.Default())
	for _, want := range []string{
		"Recipe Summary: Pancakes",
		"Servings:", "Total Cost:", "Cost per Serving:",
		"Ingredient", "Amount Used", "Cost/Serving",
		"Flour", "200.00 g", "$0.80", "$0.20",
		"Milk", "300.00 ml", "$0.90", "$0.23",
		"$1.70", "$0.43",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Flour") > strings.Index(out, "Milk") {
		t.Error("rows should keep entry order")
	}
}

func TestRenderSummaryNil(t *testing.T) {
	if got := RenderSummary(nil, nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderBanner(t *testing.T) {
	out := RenderBanner(200)
	if !strings.HasPrefix(out, "    ") {
		t.Error("banner should be padded to the centre of a wide terminal")
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("banner has %d lines, want 5", lines)
	}
}

func TestCompletions(t *testing.T) {
	words := []string{"g", "gram", "grams", "kg", "tbsp", "tsp"}

	tests := []struct {
		line string
		want []string
	}{
		{"gr", []string{"gram", "grams"}},
		{"T", []string{"tbsp", "tsp"}},
		{"", nil},
		{"g ", nil},
		{"oz", nil},
	}
	for _, tt := range tests {
		got := completions(words, tt.line)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("completions(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
