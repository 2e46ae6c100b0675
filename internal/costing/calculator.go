// Package costing prorates a bulk purchase cost down to the amount of an
// ingredient a recipe actually uses.
package costing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hammamikhairi/costcook/internal/amount"
	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/logger"
	"github.com/hammamikhairi/costcook/internal/units"
)

// Field names an IngredientEntry field, for error reporting.
type Field string

const (
	FieldName            Field = "name"
	FieldUsedUnit        Field = "used unit"
	FieldPurchasedUnit   Field = "purchased unit"
	FieldUsedAmount      Field = "used amount"
	FieldPurchasedAmount Field = "purchased amount"
	FieldPurchaseCost    Field = "purchase cost"
)

// FieldError reports which field of an entry was rejected.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string { return string(e.Field) + ": " + e.Err.Error() }

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *FieldError) Unwrap() error { return e.Err }

// FieldOf returns the field an error belongs to, or "" if err is not a
// FieldError.
func FieldOf(err error) Field {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}

// ComputeCost returns the share of purchaseCost that the used quantity
// represents: (usedBase / purchasedBase) * purchaseCost. Both quantities must
// be in the same unit category.
func ComputeCost(used, purchased domain.Quantity, purchaseCost float64) (float64, error) {
	if err := CheckCompatible(used.Unit, purchased.Unit); err != nil {
		return 0, err
	}
	if purchaseCost < 0 || math.IsNaN(purchaseCost) || math.IsInf(purchaseCost, 0) {
		return 0, fmt.Errorf("%w: purchase cost %v", domain.ErrInvalidAmount, purchaseCost)
	}

	usedBase := units.QuantityToBase(used)
	purchasedBase := units.QuantityToBase(purchased)
	if purchasedBase == 0 {
		return 0, fmt.Errorf("%w: purchased amount is zero", domain.ErrDivisionByZero)
	}
	return (usedBase / purchasedBase) * purchaseCost, nil
}

// CheckCompatible returns ErrIncompatibleUnits unless both units share a
// category.
func CheckCompatible(used, purchased domain.Unit) error {
	if !units.SameCategory(used, purchased) {
		return fmt.Errorf("%w: %s (%s) and %s (%s)", domain.ErrIncompatibleUnits,
			used.Symbol, used.Category, purchased.Symbol, purchased.Category)
	}
	return nil
}

// Calculator builds costed ingredient records from raw user input.
type Calculator struct {
	units *units.Table
	log   *logger.Logger
}

// New creates a calculator that resolves units against table.
func New(table *units.Table, log *logger.Logger) *Calculator {
	return &Calculator{units: table, log: log}
}

// Units returns the unit table the calculator resolves against.
func (c *Calculator) Units() *units.Table { return c.units }

// Cost is ComputeCost with logging.
func (c *Calculator) Cost(used, purchased domain.Quantity, purchaseCost float64) (float64, error) {
	cost, err := ComputeCost(used, purchased, purchaseCost)
	if err != nil {
		c.log.Debug("cost %s of %s: %v", used, purchased, err)
		return 0, err
	}
	c.log.Debug("cost %s of %s at %.4f = %.4f", used, purchased, purchaseCost, cost)
	return cost, nil
}

// Record costs an ingredient whose fields have already been parsed.
func (c *Calculator) Record(name string, used, purchased domain.Quantity, purchaseCost float64) (domain.IngredientRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.IngredientRecord{}, &FieldError{FieldName, domain.ErrEmptyIngredientName}
	}
	cost, err := c.Cost(used, purchased, purchaseCost)
	if err != nil {
		field := FieldPurchaseCost
		if errors.Is(err, domain.ErrIncompatibleUnits) {
			field = FieldPurchasedUnit
		}
		return domain.IngredientRecord{}, &FieldError{field, err}
	}
	return domain.IngredientRecord{
		Name:         name,
		Used:         used,
		Purchased:    purchased,
		PurchaseCost: purchaseCost,
		TotalCost:    cost,
	}, nil
}

// IngredientName trims name and rejects a blank one.
func (c *Calculator) IngredientName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &FieldError{FieldName, domain.ErrEmptyIngredientName}
	}
	return name, nil
}

// UsedUnit resolves the unit the recipe measures an ingredient in.
func (c *Calculator) UsedUnit(token string) (domain.Unit, error) {
	u, err := c.units.Resolve(token)
	if err != nil {
		return domain.Unit{}, &FieldError{FieldUsedUnit, err}
	}
	return u, nil
}

// PurchasedUnit resolves the unit the ingredient was bought in. It must
// share a category with used.
func (c *Calculator) PurchasedUnit(token string, used domain.Unit) (domain.Unit, error) {
	u, err := c.units.Resolve(token)
	if err != nil {
		return domain.Unit{}, &FieldError{FieldPurchasedUnit, err}
	}
	if err := CheckCompatible(used, u); err != nil {
		return domain.Unit{}, &FieldError{FieldPurchasedUnit, err}
	}
	return u, nil
}

// UsedQuantity parses the amount used, in unit.
func (c *Calculator) UsedQuantity(text string, unit domain.Unit) (domain.Quantity, error) {
	return quantity(FieldUsedAmount, text, unit)
}

// PurchasedQuantity parses the amount purchased, in unit.
func (c *Calculator) PurchasedQuantity(text string, unit domain.Unit) (domain.Quantity, error) {
	return quantity(FieldPurchasedAmount, text, unit)
}

// PurchaseCost parses what the purchased amount cost.
func (c *Calculator) PurchaseCost(text string) (float64, error) {
	cost, err := amount.ParseCost(text)
	if err != nil {
		return 0, &FieldError{FieldPurchaseCost, err}
	}
	return cost, nil
}

func quantity(field Field, text string, unit domain.Unit) (domain.Quantity, error) {
	v, err := amount.Parse(text)
	if err != nil {
		return domain.Quantity{}, &FieldError{field, err}
	}
	q, err := domain.NewQuantity(v, unit)
	if err != nil {
		return domain.Quantity{}, &FieldError{field, err}
	}
	return q, nil
}

// Ingredient validates every field of a raw entry and returns the costed
// record. Fields are checked in prompt order, through the same steps the
// interview uses, and the first failure is returned as a *FieldError.
func (c *Calculator) Ingredient(e domain.IngredientEntry) (domain.IngredientRecord, error) {
	name, err := c.IngredientName(e.Name)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	usedUnit, err := c.UsedUnit(e.UsedUnit)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	purchasedUnit, err := c.PurchasedUnit(e.PurchasedUnit, usedUnit)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	used, err := c.UsedQuantity(e.UsedAmount, usedUnit)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	purchased, err := c.PurchasedQuantity(e.PurchasedAmount, purchasedUnit)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	cost, err := c.PurchaseCost(e.PurchaseCost)
	if err != nil {
		return domain.IngredientRecord{}, err
	}
	return c.Record(name, used, purchased, cost)
}
