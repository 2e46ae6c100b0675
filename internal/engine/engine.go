// Package engine implements the recipe ledger: it collects costed
// ingredients, keeps the running total and produces the per-serving
// summary once entry is finished.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithID overrides the generated recipe ID.
func WithID(id string) Option {
	return func(e *Engine) {
		e.recipe.ID = id
	}
}

// Engine owns one recipe. A recipe starts out collecting ingredients and
// moves to finalized when Close or Finalize is called; that transition is
// one-way.
//
// Snapshot may be called from another goroutine (the terminal status bar),
// so all state is guarded by mu.
type Engine struct {
	mu     sync.RWMutex
	recipe domain.Recipe
	log    *logger.Logger
}

// New starts a recipe with the given name and servings.
func New(name string, servings int, log *logger.Logger, opts ...Option) (*Engine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyRecipeName
	}
	if servings <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidServings, servings)
	}

	e := &Engine{
		recipe: domain.Recipe{
			ID:       uuid.NewString(),
			Name:     name,
			Servings: servings,
			Status:   domain.RecipeCollecting,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log.Info("started recipe %s %q (%d servings)", e.recipe.ID, name, servings)
	return e, nil
}

// AddIngredient appends a costed ingredient and adds its cost to the
// running total.
func (e *Engine) AddIngredient(rec domain.IngredientRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.recipe.Status != domain.RecipeCollecting {
		return domain.ErrRecipeFinalized
	}
	if strings.TrimSpace(rec.Name) == "" {
		return domain.ErrEmptyIngredientName
	}

	e.recipe.Ingredients = append(e.recipe.Ingredients, rec)
	e.recipe.TotalCost += rec.TotalCost

	e.log.Debug("recipe %s: added %q (%s) cost=%.4f total=%.4f",
		e.recipe.ID, rec.Name, rec.Used, rec.TotalCost, e.recipe.TotalCost)
	return nil
}

// Close ends ingredient entry. A recipe needs at least one ingredient
// before it can be closed. Closing an already finalized recipe is a no-op.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closeLocked()
}

func (e *Engine) closeLocked() error {
	if e.recipe.Status == domain.RecipeFinalized {
		return nil
	}
	if len(e.recipe.Ingredients) == 0 {
		return domain.ErrNoIngredients
	}
	e.recipe.Status = domain.RecipeFinalized
	e.log.Info("recipe %s finalized with %d ingredient(s), total=%.4f",
		e.recipe.ID, len(e.recipe.Ingredients), e.recipe.TotalCost)
	return nil
}

// Finalize closes the recipe if needed and computes the per-serving
// breakdown. servings must match the count the recipe was started with.
// It recomputes from the stored totals every time, so repeated calls
// return identical summaries.
func (e *Engine) Finalize(servings int) (*domain.SummaryView, error) {
	if servings <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidServings, servings)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if servings != e.recipe.Servings {
		return nil, fmt.Errorf("%w: %d, recipe %s makes %d", domain.ErrInvalidServings,
			servings, e.recipe.ID, e.recipe.Servings)
	}
	if err := e.closeLocked(); err != nil {
		return nil, err
	}

	view := &domain.SummaryView{
		RecipeName:     e.recipe.Name,
		Servings:       servings,
		TotalCost:      e.recipe.TotalCost,
		CostPerServing: e.recipe.TotalCost / float64(servings),
		Rows:           make([]domain.SummaryRow, 0, len(e.recipe.Ingredients)),
	}
	for i := range e.recipe.Ingredients {
		ing := &e.recipe.Ingredients[i]
		ing.CostPerServing = ing.TotalCost / float64(servings)
		view.Rows = append(view.Rows, domain.SummaryRow{
			Name:           ing.Name,
			AmountUsed:     ing.Used.String(),
			TotalCost:      ing.TotalCost,
			CostPerServing: ing.CostPerServing,
		})
	}

	e.log.Debug("recipe %s: %d servings, %.4f per serving", e.recipe.ID, servings, view.CostPerServing)
	return view, nil
}

// Recipe returns a copy of the recipe state.
func (e *Engine) Recipe() domain.Recipe {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r := e.recipe
	r.Ingredients = append([]domain.IngredientRecord(nil), e.recipe.Ingredients...)
	return r
}

// Status returns the recipe's lifecycle state.
func (e *Engine) Status() domain.RecipeStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recipe.Status
}

// TotalCost returns the running total.
func (e *Engine) TotalCost() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recipe.TotalCost
}

// Snapshot returns the running totals for display.
func (e *Engine) Snapshot() domain.Tally {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return domain.Tally{
		RecipeName:  e.recipe.Name,
		Servings:    e.recipe.Servings,
		Ingredients: len(e.recipe.Ingredients),
		TotalCost:   e.recipe.TotalCost,
		Status:      e.recipe.Status,
	}
}
