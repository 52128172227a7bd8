package billing

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Item is one billable row on an invoice: a quantity of something at a unit
// price, taxed at a percentage rate. The derived amounts are never stored,
// they are recomputed from the current state on every call.
type Item struct {
	count       decimal.Decimal
	price       decimal.Decimal
	tax         decimal.Decimal
	unit        string
	description string
}

// NewItem creates an item from a quantity and a unit price. Both must be
// non-negative; zero is valid and yields zero totals (placeholder rows are
// allowed). The tax rate is a percentage and defaults to zero.
func NewItem(count, price decimal.Decimal) (*Item, error) {
	it := &Item{}
	if err := it.SetCount(count); err != nil {
		return nil, err
	}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	return it, nil
}

// SetCount assigns the quantity. Negative quantities are rejected.
func (it *Item) SetCount(count decimal.Decimal) error {
	if count.IsNegative() {
		return NewValidationError("count", count.String(), "count must not be negative")
	}
	it.count = count
	return nil
}

// SetPrice assigns the unit price. Negative prices are rejected.
func (it *Item) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return NewValidationError("price", price.String(), "price must not be negative")
	}
	it.price = price
	return nil
}

// SetTax assigns the tax rate percentage. Negative rates are rejected.
func (it *Item) SetTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return NewValidationError("tax", tax.String(), "tax rate must not be negative")
	}
	it.tax = tax
	return nil
}

// SetUnit assigns the free-text unit label (pieces, kg, h, ...).
func (it *Item) SetUnit(unit string) {
	it.unit = unit
}

// SetDescription assigns the free-text description. It may contain newlines,
// which the renderer lays out as multiple lines.
func (it *Item) SetDescription(description string) {
	it.description = description
}

// Count returns the quantity.
func (it *Item) Count() decimal.Decimal { return it.count }

// Price returns the unit price.
func (it *Item) Price() decimal.Decimal { return it.price }

// Tax returns the tax rate percentage.
func (it *Item) Tax() decimal.Decimal { return it.tax }

// Unit returns the unit label.
func (it *Item) Unit() string { return it.unit }

// Description returns the description.
func (it *Item) Description() string { return it.description }

// Total returns the pre-tax amount for the row: price × count.
func (it *Item) Total() decimal.Decimal {
	return it.price.Mul(it.count)
}

// TotalWithTax returns the amount for the row including tax:
// price × count × (1 + tax/100).
func (it *Item) TotalWithTax() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(it.tax.Div(oneHundred))
	return it.Total().Mul(factor)
}

// TaxAmount returns only the tax part of the row amount.
func (it *Item) TaxAmount() decimal.Decimal {
	return it.TotalWithTax().Sub(it.Total())
}
