package domain

import "fmt"

// Category groups units that can be converted into each other.
type Category int

const (
	CategoryWeight Category = iota
	CategoryVolume
	CategorySpoon
	CategoryCount
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryWeight:
		return "weight"
	case CategoryVolume:
		return "volume"
	case CategorySpoon:
		return "spoon"
	case CategoryCount:
		return "count"
	default:
		return "unknown"
	}
}

// BaseSymbol returns the symbol of the unit every amount in the category
// is normalized to.
func (c Category) BaseSymbol() string {
	switch c {
	case CategoryWeight:
		return "g"
	case CategoryVolume, CategorySpoon:
		return "ml"
	default:
		return "unit"
	}
}

// Unit is a measurement unit. Scale is how many base units one of this
// unit represents (1 kg = 1000 g).
type Unit struct {
	Symbol   string
	Name     string
	Aliases  []string
	Category Category
	Scale    float64
}

// String returns the canonical symbol.
func (u Unit) String() string { return u.Symbol }

// Quantity is a positive amount of some unit.
type Quantity struct {
	Amount float64
	Unit   Unit
}

// NewQuantity returns a quantity, rejecting amounts that are not > 0.
func NewQuantity(amount float64, unit Unit) (Quantity, error) {
	if !(amount > 0) {
		return Quantity{}, fmt.Errorf("%w: %v must be greater than zero", ErrInvalidAmount, amount)
	}
	return Quantity{Amount: amount, Unit: unit}, nil
}

// String formats the quantity the way the summary table shows it.
func (q Quantity) String() string {
	return fmt.Sprintf("%.2f %s", q.Amount, q.Unit.Symbol)
}
