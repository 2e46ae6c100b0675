// Package money formats costs for display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "$"

// Formatter renders amounts rounded half-up to cents, with the digit
// grouping of its locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter returns a formatter for the given currency symbol and BCP 47
// locale tag ("en", "en-NZ", "de"). An empty locale means English.
func NewFormatter(symbol, locale string) (*Formatter, error) {
	tag := language.English
	if locale != "" {
		t, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
		}
		tag = t
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// Default returns a "$" formatter for English.
func Default() *Formatter {
	return &Formatter{symbol: DefaultSymbol, printer: message.NewPrinter(language.English)}
}

// Round rounds v half-up to two decimal places.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Format renders v as e.g. "$1,234.50".
func (f *Formatter) Format(v float64) string {
	r, _ := Round(v).Float64()
	return f.symbol + f.printer.Sprintf("%.2f", r)
}

// Symbol returns the configured currency symbol.
func (f *Formatter) Symbol() string { return f.symbol }
