package render

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders decimals for display according to a currency symbol and
// a BCP 47 locale tag. Integer-valued decimals render without a fractional
// part, all others with exactly two digits. The invoice core stays
// locale-agnostic; this is the only place locale rules apply.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter creates a formatter for the given currency symbol and locale
// tag. An unparseable tag falls back to French, the default document locale.
func NewFormatter(symbol, localeTag string) *Formatter {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.French
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Amount renders a monetary value with the currency symbol appended.
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.printer.Sprintf("%v %s", f.number(d), f.symbol)
}

// Quantity renders a quantity, with the unit label appended when set.
func (f *Formatter) Quantity(d decimal.Decimal, unit string) string {
	if unit == "" {
		return f.printer.Sprintf("%v", f.number(d))
	}
	return f.printer.Sprintf("%v %s", f.number(d), unit)
}

// Rate renders a tax or royalty rate percentage.
func (f *Formatter) Rate(d decimal.Decimal) string {
	return f.printer.Sprintf("%v %%", f.number(d))
}

func (f *Formatter) number(d decimal.Decimal) number.Formatter {
	if d.IsInteger() {
		return number.Decimal(d.IntPart())
	}
	value, _ := d.Round(2).Float64()
	return number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2))
}
