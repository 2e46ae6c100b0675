package units

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/costcook/internal/domain"
)

func TestResolveAliases(t *testing.T) {
	table := Default()

	tests := []struct {
		token      string
		wantSymbol string
		wantCat    domain.Category
		wantScale  float64
	}{
		{"g", "g", domain.CategoryWeight, 1},
		{"gram", "g", domain.CategoryWeight, 1},
		{"grams", "g", domain.CategoryWeight, 1},
		{"kg", "kg", domain.CategoryWeight, 1000},
		{"kilogram", "kg", domain.CategoryWeight, 1000},
		{"kilograms", "kg", domain.CategoryWeight, 1000},
		{"ml", "ml", domain.CategoryVolume, 1},
		{"milliliter", "ml", domain.CategoryVolume, 1},
		{"milliliters", "ml", domain.CategoryVolume, 1},
		{"l", "l", domain.CategoryVolume, 1000},
		{"liter", "l", domain.CategoryVolume, 1000},
		{"litre", "l", domain.CategoryVolume, 1000},
		{"liters", "l", domain.CategoryVolume, 1000},
		{"litres", "l", domain.CategoryVolume, 1000},
		{"tbsp", "tbsp", domain.CategorySpoon, 15},
		{"tablespoon", "tbsp", domain.CategorySpoon, 15},
		{"tablespoons", "tbsp", domain.CategorySpoon, 15},
		{"tsp", "tsp", domain.CategorySpoon, 5},
		{"teaspoon", "tsp", domain.CategorySpoon, 5},
		{"teaspoons", "tsp", domain.CategorySpoon, 5},
		{"unit", "unit", domain.CategoryCount, 1},
		{"units", "unit", domain.CategoryCount, 1},
		{"count", "unit", domain.CategoryCount, 1},
		{"piece", "unit", domain.CategoryCount, 1},
		{"pieces", "unit", domain.CategoryCount, 1},

		// Case and whitespace are ignored.
		{"  KG ", "kg", domain.CategoryWeight, 1000},
		{"Tablespoons", "tbsp", domain.CategorySpoon, 15},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			u, err := table.Resolve(tt.token)
			if err != nil {
				t.Fatalf("resolve %q: %v", tt.token, err)
			}
			if u.Symbol != tt.wantSymbol {
				t.Errorf("symbol = %q, want %q", u.Symbol, tt.wantSymbol)
			}
			if u.Category != tt.wantCat {
				t.Errorf("category = %s, want %s", u.Category, tt.wantCat)
			}
			if u.Scale != tt.wantScale {
				t.Errorf("scale = %v, want %v", u.Scale, tt.wantScale)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	table := Default()

	for _, token := range []string{"", "cup", "oz", "kgs", "x x"} {
		if _, err := table.Resolve(token); !errors.Is(err, domain.ErrUnrecognizedUnit) {
			t.Errorf("resolve %q: expected ErrUnrecognizedUnit, got %v", token, err)
		}
	}
}

func TestNewTableRejectsDuplicateAlias(t *testing.T) {
	_, err := NewTable(
		domain.Unit{Symbol: "g", Name: "gram", Category: domain.CategoryWeight, Scale: 1},
		domain.Unit{Symbol: "gr", Aliases: []string{"Gram"}, Category: domain.CategoryWeight, Scale: 1},
	)
	if err == nil {
		t.Fatal("expected error for alias shared by two units")
	}
}

func TestNewTableRejectsBadScale(t *testing.T) {
	for _, scale := range []float64{0, -5} {
		_, err := NewTable(domain.Unit{Symbol: "x", Category: domain.CategoryCount, Scale: scale})
		if err == nil {
			t.Fatalf("expected error for scale %v", scale)
		}
	}
}

func TestUnitsByCategory(t *testing.T) {
	table := Default()

	spoons := table.Units(domain.CategorySpoon)
	if len(spoons) != 2 {
		t.Fatalf("expected 2 spoon units, got %d", len(spoons))
	}
	if spoons[0].Symbol != "tsp" || spoons[1].Symbol != "tbsp" {
		t.Fatalf("expected [tsp tbsp], got [%s %s]", spoons[0].Symbol, spoons[1].Symbol)
	}

	cats := table.Categories()
	want := []domain.Category{domain.CategoryWeight, domain.CategoryVolume, domain.CategorySpoon, domain.CategoryCount}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("category %d = %s, want %s", i, cats[i], want[i])
		}
	}

	aliases := table.Aliases(domain.CategoryCount)
	if len(aliases) != 5 {
		t.Fatalf("expected 5 count aliases, got %v", aliases)
	}
}

func TestEveryAliasMapsToOneCategory(t *testing.T) {
	table := Default()

	seen := make(map[string]domain.Category)
	for _, c := range table.Categories() {
		for _, a := range table.Aliases(c) {
			if prev, ok := seen[a]; ok {
				t.Fatalf("alias %q in both %s and %s", a, prev, c)
			}
			seen[a] = c
		}
	}
	if len(seen) != 25 {
		t.Fatalf("expected 25 aliases, got %d", len(seen))
	}
}
