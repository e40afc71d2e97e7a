package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the formatting locale used when none is configured.
// Kept as a parameter rather than a constant choice; see config.
const DefaultLocale = "en-IN"

// Formatter renders amounts in one currency for one locale: symbol,
// locale-grouped digits and the currency's minor-unit fraction digits.
// Rounding beyond the underlying formatter's default is not contracted.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	scale   int
}

// NewFormatter builds a formatter for an ISO 4217 code and a BCP 47
// locale. Unknown codes fall back to USD, unknown locales to
// DefaultLocale.
func NewFormatter(code, locale string) Formatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	scale, _ := currency.Cash.Rounding(unit)
	return Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		scale:   scale,
	}
}

// Currency returns the ISO code the formatter renders.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format renders an exact decimal amount as a display string.
func (f Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	sym := f.printer.Sprint(currency.Symbol(f.unit))
	return sym + f.printer.Sprint(number.Decimal(v, number.Scale(f.scale)))
}

// FormatFloat renders a raw float amount, used for per-item unit prices
// that never pass through the totals pipeline.
func (f Formatter) FormatFloat(v float64) string {
	return f.Format(decimal.NewFromFloat(v))
}
