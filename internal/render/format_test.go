package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatter_Amount_EnglishLocale(t *testing.T) {
	f := NewFormatter("$", "en-US")

	tests := []struct {
		value string
		want  string
	}{
		// Integer values render without a fractional part.
		{"19200", "19,200 $"},
		{"0", "0 $"},
		{"6630.00", "6,630 $"},
		// Non-integer values render with exactly two digits.
		{"19.99", "19.99 $"},
		{"0.5", "0.50 $"},
		{"1234.567", "1,234.57 $"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Amount(dec(tt.value)), "value %s", tt.value)
	}
}

func TestFormatter_Amount_FrenchLocale(t *testing.T) {
	f := NewFormatter("€", "fr-FR")

	// French uses a decimal comma; the exact grouping separator depends on
	// the CLDR version, so only the digits and the suffix are asserted.
	out := f.Amount(dec("1234.5"))
	assert.Contains(t, out, "234,50")
	assert.True(t, strings.HasSuffix(out, "€"), "got %q", out)

	assert.Equal(t, "600 €", f.Amount(dec("600")))
}

func TestFormatter_Quantity(t *testing.T) {
	f := NewFormatter("€", "en-US")

	assert.Equal(t, "32", f.Quantity(dec("32"), ""))
	assert.Equal(t, "32 kg", f.Quantity(dec("32"), "kg"))
	assert.Equal(t, "2.50 h", f.Quantity(dec("2.5"), "h"))
}

func TestFormatter_Rate(t *testing.T) {
	f := NewFormatter("€", "en-US")

	assert.Equal(t, "21 %", f.Rate(dec("21")))
	assert.Equal(t, "5.50 %", f.Rate(dec("5.5")))
}

func TestNewFormatter_BadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("€", "not a locale")
	// Falls back to French formatting rather than failing.
	assert.Equal(t, "600 €", f.Amount(dec("600")))
}
