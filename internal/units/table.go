// Package units provides the unit registry and base-unit conversion.
package units

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hammamikhairi/costcook/internal/domain"
)

// Table maps unit names and aliases to units. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	units   []domain.Unit
	aliases map[string]int // normalized alias -> index into units
}

// NewTable builds a table from the given units. Every alias (and the
// symbol and name, which are aliases too) must map to exactly one unit,
// and every scale must be greater than zero.
func NewTable(units ...domain.Unit) (*Table, error) {
	t := &Table{aliases: make(map[string]int)}
	for _, u := range units {
		if !(u.Scale > 0) {
			return nil, fmt.Errorf("unit %q: scale must be greater than zero, got %v", u.Symbol, u.Scale)
		}
		if normalize(u.Symbol) == "" {
			return nil, fmt.Errorf("unit with name %q has no symbol", u.Name)
		}
		idx := len(t.units)
		t.units = append(t.units, u)
		for _, a := range keys(u) {
			if prev, ok := t.aliases[a]; ok && prev != idx {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", a, t.units[prev].Symbol, u.Symbol)
			}
			t.aliases[a] = idx
		}
	}
	return t, nil
}

// Default returns the kitchen unit table: grams and kilograms, millilitres
// and litres, tablespoons and teaspoons, and counted items.
func Default() *Table {
	t, err := NewTable(defaultUnits...)
	if err != nil {
		panic("units: invalid default table: " + err.Error())
	}
	return t
}

var defaultUnits = []domain.Unit{
	{Symbol: "g", Name: "gram", Aliases: []string{"grams"}, Category: domain.CategoryWeight, Scale: 1},
	{Symbol: "kg", Name: "kilogram", Aliases: []string{"kilograms"}, Category: domain.CategoryWeight, Scale: 1000},
	{Symbol: "ml", Name: "milliliter", Aliases: []string{"milliliters"}, Category: domain.CategoryVolume, Scale: 1},
	{Symbol: "l", Name: "liter", Aliases: []string{"litre", "liters", "litres"}, Category: domain.CategoryVolume, Scale: 1000},
	{Symbol: "tbsp", Name: "tablespoon", Aliases: []string{"tablespoons"}, Category: domain.CategorySpoon, Scale: 15},
	{Symbol: "tsp", Name: "teaspoon", Aliases: []string{"teaspoons"}, Category: domain.CategorySpoon, Scale: 5},
	{Symbol: "unit", Name: "unit", Aliases: []string{"units", "count", "piece", "pieces"}, Category: domain.CategoryCount, Scale: 1},
}

// Resolve looks up a unit by symbol, name or alias. Matching ignores case
// and surrounding whitespace.
func (t *Table) Resolve(token string) (domain.Unit, error) {
	idx, ok := t.aliases[normalize(token)]
	if !ok {
		return domain.Unit{}, fmt.Errorf("%w: %q", domain.ErrUnrecognizedUnit, strings.TrimSpace(token))
	}
	return t.units[idx], nil
}

// Units returns every unit in the given category, smallest scale first.
func (t *Table) Units(c domain.Category) []domain.Unit {
	var out []domain.Unit
	for _, u := range t.units {
		if u.Category == c {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Scale < out[j].Scale })
	return out
}

// Categories returns the categories present in the table in declaration order.
func (t *Table) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, u := range t.units {
		if !seen[u.Category] {
			seen[u.Category] = true
			out = append(out, u.Category)
		}
	}
	return out
}

// Aliases returns every accepted spelling for the units of a category,
// sorted alphabetically.
func (t *Table) Aliases(c domain.Category) []string {
	var out []string
	for a, idx := range t.aliases {
		if t.units[idx].Category == c {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

func keys(u domain.Unit) []string {
	out := []string{normalize(u.Symbol)}
	if n := normalize(u.Name); n != "" {
		out = append(out, n)
	}
	for _, a := range u.Aliases {
		if n := normalize(a); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
