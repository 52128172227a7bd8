package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewItem_RejectsNegative(t *testing.T) {
	_, err := NewItem(dec("-1"), dec("10"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = NewItem(dec("1"), dec("-10"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestNewItem_ZeroIsValid(t *testing.T) {
	// Zero-quantity rows are valid placeholders.
	it, err := NewItem(decimal.Zero, dec("600"))
	require.NoError(t, err)
	assert.True(t, it.Total().IsZero())
	assert.True(t, it.TotalWithTax().IsZero())
	assert.True(t, it.TaxAmount().IsZero())
}

func TestItem_Setters_AlwaysAssign(t *testing.T) {
	it, err := NewItem(dec("2"), dec("10"))
	require.NoError(t, err)

	// Assigning zero replaces the previous value instead of being ignored.
	require.NoError(t, it.SetCount(decimal.Zero))
	assert.True(t, it.Count().IsZero())

	require.NoError(t, it.SetPrice(decimal.Zero))
	assert.True(t, it.Price().IsZero())

	// Invalid assignment leaves the previous value untouched.
	err = it.SetCount(dec("-3"))
	require.Error(t, err)
	assert.True(t, it.Count().IsZero())
}

func TestItem_Totals(t *testing.T) {
	tests := []struct {
		name         string
		count        string
		price        string
		tax          string
		total        string
		totalWithTax string
		taxAmount    string
	}{
		{"no tax", "32", "600", "0", "19200", "19200", "0"},
		{"21 percent", "60", "50", "21", "3000", "3630", "630"},
		{"fractional count", "2.5", "10", "0", "25", "25", "0"},
		{"fractional price", "3", "19.99", "20", "59.97", "71.964", "11.994"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewItem(dec(tt.count), dec(tt.price))
			require.NoError(t, err)
			require.NoError(t, it.SetTax(dec(tt.tax)))

			assert.True(t, it.Total().Equal(dec(tt.total)),
				"total = %s", it.Total())
			assert.True(t, it.TotalWithTax().Equal(dec(tt.totalWithTax)),
				"total with tax = %s", it.TotalWithTax())
			assert.True(t, it.TaxAmount().Equal(dec(tt.taxAmount)),
				"tax amount = %s", it.TaxAmount())
		})
	}
}

func TestItem_TaxIdentity(t *testing.T) {
	// total_with_tax − total == tax_amount for any rate ≥ 0.
	rates := []string{"0", "2.1", "5.5", "10", "20", "21", "33.333"}
	it, err := NewItem(dec("7"), dec("149.99"))
	require.NoError(t, err)

	for _, rate := range rates {
		require.NoError(t, it.SetTax(dec(rate)))
		diff := it.TotalWithTax().Sub(it.Total())
		assert.True(t, diff.Equal(it.TaxAmount()), "rate %s: %s != %s",
			rate, diff, it.TaxAmount())
	}
}
