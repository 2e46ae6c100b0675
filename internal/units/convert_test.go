package units

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/costcook/internal/domain"
)

func TestToBase(t *testing.T) {
	table := Default()

	tests := []struct {
		amount float64
		token  string
		want   float64
	}{
		{200, "g", 200},
		{1, "kg", 1000},
		{0.5, "l", 500},
		{1, "tbsp", 15},
		{3, "tsp", 15},
		{6, "pieces", 6},
	}

	for _, tt := range tests {
		got, err := table.ToBase(tt.amount, tt.token)
		if err != nil {
			t.Fatalf("ToBase(%v, %q): %v", tt.amount, tt.token, err)
		}
		if got != tt.want {
			t.Errorf("ToBase(%v, %q) = %v, want %v", tt.amount, tt.token, got, tt.want)
		}
	}
}

func TestToBaseUnknownUnit(t *testing.T) {
	table := Default()

	_, err := table.ToBase(1, "cups")
	if !errors.Is(err, domain.ErrUnrecognizedUnit) {
		t.Fatalf("expected ErrUnrecognizedUnit, got %v", err)
	}
}

// One of u1 over one of u2 equals the ratio of their scales, for every pair
// of units in the same category.
func TestToBaseScaleRatio(t *testing.T) {
	table := Default()

	for _, c := range table.Categories() {
		us := table.Units(c)
		for _, u1 := range us {
			for _, u2 := range us {
				got := ToBase(1, u1) / ToBase(1, u2)
				want := u1.Scale / u2.Scale
				if got != want {
					t.Errorf("%s/%s: got %v, want %v", u1.Symbol, u2.Symbol, got, want)
				}
			}
		}
	}
}

func TestSameCategory(t *testing.T) {
	table := Default()
	mustResolve := func(token string) domain.Unit {
		t.Helper()
		u, err := table.Resolve(token)
		if err != nil {
			t.Fatalf("resolve %q: %v", token, err)
		}
		return u
	}

	if !SameCategory(mustResolve("g"), mustResolve("kg")) {
		t.Error("g and kg should share a category")
	}
	if SameCategory(mustResolve("g"), mustResolve("ml")) {
		t.Error("g and ml should not share a category")
	}
	// Spoons are kept apart from volume even though both end up in ml.
	if SameCategory(mustResolve("tbsp"), mustResolve("l")) {
		t.Error("tbsp and l should not share a category")
	}
}
