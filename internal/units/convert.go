package units

import "github.com/hammamikhairi/costcook/internal/domain"

// ToBase converts amount of unit into the unit's base (grams, millilitres
// or counted items).
func ToBase(amount float64, unit domain.Unit) float64 {
	return amount * unit.Scale
}

// ToBase resolves token and converts amount into base units.
func (t *Table) ToBase(amount float64, token string) (float64, error) {
	u, err := t.Resolve(token)
	if err != nil {
		return 0, err
	}
	return ToBase(amount, u), nil
}

// QuantityToBase converts a quantity into base units.
func QuantityToBase(q domain.Quantity) float64 {
	return ToBase(q.Amount, q.Unit)
}

// SameCategory reports whether two units can be compared.
func SameCategory(a, b domain.Unit) bool {
	return a.Category == b.Category
}
