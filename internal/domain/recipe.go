// Package domain defines the core types and interfaces for the recipe cost
// calculator. All other packages depend on domain; domain depends on nothing.
package domain

// IngredientEntry is one ingredient exactly as the user typed it.
type IngredientEntry struct {
	Name            string
	UsedAmount      string
	UsedUnit        string
	PurchasedAmount string
	PurchasedUnit   string
	PurchaseCost    string
}

// IngredientRecord is a costed ingredient. TotalCost is set when the record
// is built; CostPerServing is set when the recipe is finalized.
type IngredientRecord struct {
	Name           string
	Used           Quantity
	Purchased      Quantity
	PurchaseCost   float64
	TotalCost      float64
	CostPerServing float64
}

// Recipe is the ledger of ingredients being costed.
type Recipe struct {
	ID          string
	Name        string
	Servings    int
	Ingredients []IngredientRecord
	TotalCost   float64
	Status      RecipeStatus
}

// RecipeStatus tracks the lifecycle of a recipe.
type RecipeStatus int

const (
	// RecipeCollecting accepts new ingredients.
	RecipeCollecting RecipeStatus = iota
	// RecipeFinalized is terminal; only the summary can be computed.
	RecipeFinalized
)

// String returns a human-readable recipe status.
func (s RecipeStatus) String() string {
	switch s {
	case RecipeCollecting:
		return "collecting"
	case RecipeFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// SummaryView is what the presentation layer renders once a recipe is done.
type SummaryView struct {
	RecipeName     string
	Servings       int
	TotalCost      float64
	CostPerServing float64
	Rows           []SummaryRow
}

// SummaryRow is one ingredient line of the summary.
type SummaryRow struct {
	Name           string
	AmountUsed     string // e.g. "200.00 g"
	TotalCost      float64
	CostPerServing float64
}

// Tally is a point-in-time view of a recipe still being entered.
type Tally struct {
	RecipeName  string
	Servings    int
	Ingredients int
	TotalCost   float64
	Status      RecipeStatus
}
