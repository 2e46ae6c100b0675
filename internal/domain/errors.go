package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrUnrecognizedUnit    = errors.New("unrecognized unit")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrIncompatibleUnits   = errors.New("incompatible units")
	ErrInvalidServings     = errors.New("invalid servings")
	ErrEmptyIngredientName = errors.New("ingredient name is blank")
	ErrEmptyRecipeName     = errors.New("recipe name is blank")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNoIngredients       = errors.New("recipe has no ingredients")
	ErrRecipeFinalized     = errors.New("recipe is finalized")
	ErrAborted             = errors.New("input aborted")
)
