// Package amount parses the numbers a user types: ingredient amounts,
// purchase costs and servings.
//
// Amounts accept a decimal numeral or a simple fraction ("1/2", "3.5/4").
// Nothing else is evaluated.
package amount

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/costcook/internal/domain"
)

// Detailed parse failures. Each wraps the matching domain error, so callers
// can test for either.
var (
	ErrNotANumber   = fmt.Errorf("%w: not a number or fraction", domain.ErrInvalidAmount)
	ErrNotPositive  = fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidAmount)
	ErrNegativeCost = fmt.Errorf("%w: cost can't be negative", domain.ErrInvalidAmount)

	ErrServingsBlank    = fmt.Errorf("%w: blank", domain.ErrInvalidServings)
	ErrServingsFraction = fmt.Errorf("%w: not a whole number", domain.ErrInvalidServings)
	ErrServingsNegative = fmt.Errorf("%w: negative", domain.ErrInvalidServings)
	ErrServingsZero     = fmt.Errorf("%w: zero", domain.ErrInvalidServings)
	ErrServingsNotInt   = fmt.Errorf("%w: not an integer", domain.ErrInvalidServings)
)

// numeral: digits with an optional decimal point, or a leading-point decimal.
const numeral = `(\d+(?:\.\d*)?|\.\d+)`

// amountPattern is: [sign] numeral [ "/" numeral ].
var amountPattern = regexp.MustCompile(`^([+-]?)` + numeral + `(?:\s*/\s*` + numeral + `)?$`)

// Parse converts text into an amount greater than zero.
func Parse(text string) (float64, error) {
	v, err := parseNumber(text)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("%w (got %q)", ErrNotPositive, strings.TrimSpace(text))
	}
	return v, nil
}

// ParseCost converts text into a purchase cost. Zero is allowed, negative
// values are not.
func ParseCost(text string) (float64, error) {
	v, err := parseNumber(text)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w (got %q)", ErrNegativeCost, strings.TrimSpace(text))
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return v, nil
}

// ParseServings converts text into a whole number of servings, at least 1.
func ParseServings(text string) (int, error) {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return 0, ErrServingsBlank
	case strings.Contains(s, "."):
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return 0, fmt.Errorf("%w (got %q)", ErrServingsFraction, s)
		}
		return 0, fmt.Errorf("%w (got %q)", ErrServingsNotInt, s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrServingsNotInt, s)
	}
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w (got %d)", ErrServingsNegative, n)
	case n == 0:
		return 0, ErrServingsZero
	}
	return n, nil
}

func parseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, s)
	}

	num, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, s)
	}
	if m[3] != "" {
		den, err := strconv.ParseFloat(m[3], 64)
		if err != nil || den == 0 {
			return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, s)
		}
		num /= den
	}
	if m[1] == "-" {
		num = -num
	}
	if math.IsInf(num, 0) || math.IsNaN(num) {
		return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, s)
	}
	return num, nil
}
