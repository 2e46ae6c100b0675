package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/money"
)

var summaryHeaders = []string{"Ingredient", "Amount Used", "Total Cost", "Cost/Serving"}

// RenderSummary lays out a finalized recipe: a header block with the
// totals, then one table row per ingredient in entry order.
func RenderSummary(v *domain.SummaryView, m *money.Formatter) string {
	if v == nil {
		return ""
	}
	if m == nil {
		m = money.Default()
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)

	b.WriteString(sepStyle.Render(rule))
	b.WriteByte('\n')
	b.WriteString(headingStyle.Render("Recipe Summary: " + v.RecipeName))
	b.WriteByte('\n')
	b.WriteString(sepStyle.Render(rule))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Servings:"), v.Servings)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Total Cost:"), totalStyle.Render(m.Format(v.TotalCost)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Cost per Serving:"), totalStyle.Render(m.Format(v.CostPerServing)))
	b.WriteByte('\n')

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(sepStyle).
		Headers(summaryHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := primaryStyle.Padding(0, 1)
			if row == table.HeaderRow {
				return headingStyle.Padding(0, 1)
			}
			if col >= 2 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	for _, r := range v.Rows {
		t.Row(r.Name, r.AmountUsed, m.Format(r.TotalCost), m.Format(r.CostPerServing))
	}

	b.WriteString(t.Render())
	b.WriteByte('\n')
	return b.String()
}
