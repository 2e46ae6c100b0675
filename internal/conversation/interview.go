package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hammamikhairi/costcook/internal/amount"
	"github.com/hammamikhairi/costcook/internal/costing"
	"github.com/hammamikhairi/costcook/internal/domain"
	"github.com/hammamikhairi/costcook/internal/engine"
	"github.com/hammamikhairi/costcook/internal/logger"
	"github.com/hammamikhairi/costcook/internal/money"
)

// Compile-time interface check.
var _ domain.TallySource = (*Interview)(nil)

// Option configures an interview.
type Option func(*Interview)

// WithoutIntro skips the instructions question.
func WithoutIntro() Option {
	return func(iv *Interview) { iv.intro = false }
}

// WithMoney sets the formatter used for costs in prompts and messages.
func WithMoney(f *money.Formatter) Option {
	return func(iv *Interview) { iv.money = f }
}

// Interview asks for a recipe name, servings and ingredients, one field at
// a time. Invalid input is explained and the same field is asked again;
// only reader errors (EOF, abort, cancelled context) end the interview
// early.
type Interview struct {
	in      domain.LineReader
	out     domain.Notifier
	calc    *costing.Calculator
	answers *AnswerParser
	money   *money.Formatter
	log     *logger.Logger
	intro   bool

	eng atomic.Pointer[engine.Engine]
}

// NewInterview wires an interview to its input and output.
func NewInterview(in domain.LineReader, out domain.Notifier, calc *costing.Calculator, log *logger.Logger, opts ...Option) *Interview {
	iv := &Interview{
		in:      in,
		out:     out,
		calc:    calc,
		answers: NewAnswerParser(log),
		money:   money.Default(),
		log:     log,
		intro:   true,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Tally returns the running totals of the recipe being entered.
func (iv *Interview) Tally() (domain.Tally, bool) {
	eng := iv.eng.Load()
	if eng == nil {
		return domain.Tally{}, false
	}
	return eng.Snapshot(), true
}

// Run conducts the whole interview and returns the finalized summary.
func (iv *Interview) Run(ctx context.Context) (*domain.SummaryView, error) {
	iv.notify(ctx, LineHeading())

	if iv.intro {
		show, err := iv.askYesNo(ctx, LineAskInstructions())
		if err != nil {
			return nil, err
		}
		if show {
			for _, l := range LineInstructions(iv.calc.Units()) {
				iv.notify(ctx, l)
			}
		}
	}

	name, err := iv.askRecipeName(ctx)
	if err != nil {
		return nil, err
	}
	servings, err := iv.askServings(ctx)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(name, servings, iv.log.With("engine"))
	if err != nil {
		return nil, fmt.Errorf("starting recipe: %w", err)
	}
	iv.eng.Store(eng)
	iv.notify(ctx, LineRecipeStarted(name, servings))

	for n := 1; ; n++ {
		rec, done, err := iv.askIngredient(ctx, n)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err := eng.AddIngredient(rec); err != nil {
			return nil, fmt.Errorf("adding ingredient: %w", err)
		}
		iv.notify(ctx, LineIngredientAdded(rec.Name, iv.money.Format(rec.TotalCost)))
	}

	if err := eng.Close(); err != nil {
		return nil, fmt.Errorf("closing recipe: %w", err)
	}
	iv.notify(ctx, LineNoMoreIngredients(len(eng.Recipe().Ingredients)))

	return eng.Finalize(servings)
}

// ask reads lines until accept returns nil, explaining every rejection.
func (iv *Interview) ask(ctx context.Context, prompt string, accept func(line string) error) error {
	for {
		line, err := iv.in.ReadLine(ctx, prompt)
		if err != nil {
			return err
		}
		err = accept(line)
		if err == nil {
			return nil
		}
		iv.log.Debug("rejected %q for %q: %v", line, prompt, err)
		iv.urgent(ctx, explain(err))
	}
}

func (iv *Interview) askYesNo(ctx context.Context, prompt string) (bool, error) {
	var yes bool
	err := iv.ask(ctx, prompt, func(line string) error {
		switch iv.answers.Parse(line) {
		case ReplyYes:
			yes = true
		case ReplyNo:
			yes = false
		default:
			return errNotYesNo
		}
		return nil
	})
	return yes, err
}

func (iv *Interview) askRecipeName(ctx context.Context) (string, error) {
	var name string
	err := iv.ask(ctx, LineAskRecipeName(), func(line string) error {
		name = strings.TrimSpace(line)
		if name == "" {
			return domain.ErrEmptyRecipeName
		}
		return nil
	})
	return name, err
}

func (iv *Interview) askServings(ctx context.Context) (int, error) {
	var servings int
	err := iv.ask(ctx, LineAskServings(), func(line string) error {
		var err error
		servings, err = amount.ParseServings(line)
		return err
	})
	return servings, err
}

// askIngredient collects one ingredient. done is true when the user entered
// the sentinel after at least one ingredient.
func (iv *Interview) askIngredient(ctx context.Context, n int) (rec domain.IngredientRecord, done bool, err error) {
	var name string
	err = iv.ask(ctx, LineAskIngredientName(n), func(line string) error {
		switch {
		case iv.answers.IsSentinel(line) && n == 1:
			return domain.ErrNoIngredients
		case iv.answers.IsSentinel(line):
			done = true
			return nil
		}
		var err error
		name, err = iv.calc.IngredientName(line)
		return err
	})
	if err != nil || done {
		return rec, done, err
	}

	var usedUnit domain.Unit
	err = iv.ask(ctx, LineAskUsedUnit(name), func(line string) error {
		var err error
		usedUnit, err = iv.calc.UsedUnit(line)
		return err
	})
	if err != nil {
		return rec, false, err
	}

	var purchasedUnit domain.Unit
	err = iv.ask(ctx, LineAskPurchasedUnit(name, usedUnit), func(line string) error {
		var err error
		purchasedUnit, err = iv.calc.PurchasedUnit(line, usedUnit)
		if errors.Is(err, domain.ErrIncompatibleUnits) {
			return &categoryError{err: err, valid: iv.calc.Units().Aliases(usedUnit.Category)}
		}
		return err
	})
	if err != nil {
		return rec, false, err
	}

	var used, purchased domain.Quantity
	err = iv.ask(ctx, LineAskUsedAmount(name, usedUnit), func(line string) error {
		var err error
		used, err = iv.calc.UsedQuantity(line, usedUnit)
		return err
	})
	if err != nil {
		return rec, false, err
	}
	err = iv.ask(ctx, LineAskPurchasedAmount(name, purchasedUnit), func(line string) error {
		var err error
		purchased, err = iv.calc.PurchasedQuantity(line, purchasedUnit)
		return err
	})
	if err != nil {
		return rec, false, err
	}

	var cost float64
	err = iv.ask(ctx, LineAskCost(iv.money.Symbol()), func(line string) error {
		var err error
		cost, err = iv.calc.PurchaseCost(line)
		return err
	})
	if err != nil {
		return rec, false, err
	}

	rec, err = iv.calc.Record(name, used, purchased, cost)
	return rec, false, err
}

func (iv *Interview) notify(ctx context.Context, msg string) {
	if err := iv.out.Notify(ctx, msg); err != nil {
		iv.log.Warn("notify: %v", err)
	}
}

func (iv *Interview) urgent(ctx context.Context, msg string) {
	if err := iv.out.NotifyUrgent(ctx, msg); err != nil {
		iv.log.Warn("notify: %v", err)
	}
}

var errNotYesNo = errors.New("expected yes or no")

// categoryError is a unit that resolved but belongs to the wrong category.
type categoryError struct {
	err   error
	valid []string
}

func (e *categoryError) Error() string { return e.err.Error() }
func (e *categoryError) Unwrap() error { return e.err }

// explain turns a validation error into the message shown to the user.
func explain(err error) string {
	var ce *categoryError
	switch {
	case errors.As(err, &ce):
		return LineWrongCategory(ce.valid)
	case errors.Is(err, errNotYesNo):
		return LineYesNo()
	case errors.Is(err, domain.ErrEmptyRecipeName):
		return LineBlankRecipeName()
	case errors.Is(err, domain.ErrEmptyIngredientName):
		return LineBlankIngredientName()
	case errors.Is(err, domain.ErrNoIngredients):
		return LineNeedOneIngredient()
	case errors.Is(err, amount.ErrServingsBlank):
		return LineServingsBlank()
	case errors.Is(err, amount.ErrServingsFraction):
		return LineServingsWhole()
	case errors.Is(err, amount.ErrServingsNegative):
		return LineServingsNegative()
	case errors.Is(err, amount.ErrServingsZero):
		return LineServingsZero()
	case errors.Is(err, amount.ErrServingsNotInt):
		return LineServingsNotInt()
	case errors.Is(err, domain.ErrUnrecognizedUnit):
		return LineUnknownUnit()
	case errors.Is(err, amount.ErrNotPositive):
		return LineNotPositive()
	case errors.Is(err, amount.ErrNegativeCost):
		return LineNegativeCost()
	case errors.Is(err, domain.ErrInvalidAmount):
		return LineInvalidNumber()
	default:
		return err.Error()
	}
}
