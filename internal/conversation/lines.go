// lines.go centralises every user-facing string of the interview.

package conversation

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/units"
)

// ── Intro ────────────────────────────────────────────────────────

func LineHeading() string {
	return "$$$ Recipe Cost Calculator $$$"
}

func LineAskInstructions() string {
	return "Do you want to see the instructions? (yes/no)"
}

func LineYesNo() string {
	return "Please answer yes or no."
}

// LineInstructions explains the flow. The unit list comes from the table,
// so it always matches what the calculator accepts.
func LineInstructions(table *units.Table) []string {
	out := []string{
		"--- Instructions ---",
		"This program calculates the cost of a recipe, in total and per serving.",
		"",
		"For each ingredient, enter:",
		"  - its name",
		"  - the unit you used and the unit you bought it in (same kind of unit)",
		"  - the amount used in the recipe",
		"  - the amount purchased and what it cost (e.g. 1 kg for 4.00)",
		"",
		"Amounts can be decimals (0.5) or fractions (1/2).",
		"",
		"Valid units:",
	}
	for _, c := range table.Categories() {
		var syms []string
		for _, u := range table.Units(c) {
			syms = append(syms, u.Symbol)
		}
		out = append(out, fmt.Sprintf("  - %s: %s", categoryLabel(c), strings.Join(syms, ", ")))
	}
	out = append(out, "", fmt.Sprintf("Enter '%s' to stop adding ingredients.", Sentinel))
	return out
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryWeight:
		return "Weight"
	case domain.CategoryVolume:
		return "Volume"
	case domain.CategorySpoon:
		return "Spoons"
	case domain.CategoryCount:
		return "Counted items"
	default:
		return c.String()
	}
}

// ── Recipe header ────────────────────────────────────────────────

func LineAskRecipeName() string {
	return "Enter the recipe name:"
}

func LineBlankRecipeName() string {
	return "Recipe name can't be blank."
}

func LineAskServings() string {
	return "How many servings does this recipe make?"
}

func LineServingsBlank() string {
	return "This can't be blank, please try again."
}

func LineServingsWhole() string {
	return "Please enter a whole number."
}

func LineServingsNegative() string {
	return "Please enter a positive number."
}

func LineServingsZero() string {
	return "Please enter an integer greater than 0."
}

func LineServingsNotInt() string {
	return "Please enter a valid integer."
}

func LineRecipeStarted(name string, servings int) string {
	return fmt.Sprintf("%s makes %d serving(s). Let's add the ingredients.", name, servings)
}

// ── Ingredients ──────────────────────────────────────────────────

func LineAskIngredientName(n int) string {
	return fmt.Sprintf("Ingredient #%d name ('%s' to finish):", n, Sentinel)
}

func LineNeedOneIngredient() string {
	return "Oops - you have not entered anything. You need at least one ingredient."
}

func LineBlankIngredientName() string {
	return "Ingredient name can't be blank. Please enter something."
}

func LineAskUsedUnit(name string) string {
	return fmt.Sprintf("Unit for %s used (e.g. g, kg, ml, tbsp, unit):", name)
}

func LineAskPurchasedUnit(name string, used domain.Unit) string {
	return fmt.Sprintf("Unit for %s purchased (must be %s, like %s):", name, used.Category, used.Symbol)
}

func LineUnknownUnit() string {
	return "Unknown unit. Try g, ml, kg, l, tbsp, tsp, or unit."
}

func LineWrongCategory(valid []string) string {
	return "Invalid unit for this context. Must be one of: " + strings.Join(valid, ", ")
}

func LineAskUsedAmount(name string, u domain.Unit) string {
	return fmt.Sprintf("Amount of %s used (in %s):", name, u.Symbol)
}

func LineAskPurchasedAmount(name string, u domain.Unit) string {
	return fmt.Sprintf("Amount of %s purchased (in %s):", name, u.Symbol)
}

func LineAskCost(symbol string) string {
	return fmt.Sprintf("Cost of purchased amount (%s):", symbol)
}

func LineInvalidNumber() string {
	return "Invalid number. Use numbers or fractions like 1/2."
}

func LineNotPositive() string {
	return "Amount must be greater than zero."
}

func LineNegativeCost() string {
	return "Cost can't be negative."
}

func LineIngredientAdded(name, cost string) string {
	return fmt.Sprintf("Added %s: %s", name, cost)
}

// ── Wrap-up ──────────────────────────────────────────────────────

func LineNoMoreIngredients(n int) string {
	return fmt.Sprintf("Done: %d ingredient(s) entered.", n)
}
