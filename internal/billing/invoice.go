// Package billing holds the invoice data and calculation model: parties,
// line items and the invoice aggregate with its derived totals, tax
// breakdown and rounding policy.
//
// All monetary and quantity values are exact decimals
// (github.com/shopspring/decimal); binary floating point never enters a
// computation. The package performs no I/O, layout or formatting — every
// derived value is a plain decimal or an ordered slice for a renderer to
// format.
package billing

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"facture/internal/logger"
)

// Kind is the document kind.
type Kind string

// Supported document kinds. KindInvoice is the default.
const (
	KindInvoice Kind = "invoice"
	KindQuote   Kind = "quote"
)

var kinds = []Kind{KindInvoice, KindQuote}

// Mode selects which two value columns the renderer displays for each item.
// It is purely a presentation switch and has no effect on computed totals.
type Mode int

// Supported modes. ModeUnits is the default.
const (
	// ModeUnits renders unit count and unit price columns.
	ModeUnits Mode = 1

	// ModeRoyalties renders royalty rate and sale price columns.
	ModeRoyalties Mode = 2
)

var modes = []Mode{ModeUnits, ModeRoyalties}

// TaxGroup is one row of the tax breakdown: all items sharing a tax rate,
// summed.
type TaxGroup struct {
	// Rate is the tax rate percentage shared by the grouped items.
	Rate decimal.Decimal

	// Total is the summed pre-tax amount.
	Total decimal.Decimal

	// TotalWithTax is the summed amount including tax.
	TotalWithTax decimal.Decimal

	// Tax is the summed tax amount.
	Tax decimal.Decimal
}

// Invoice is the aggregate holding one provider, one client, one creator and
// an append-only ordered sequence of items, plus the document attributes a
// renderer needs. An Invoice is exclusively owned by the caller constructing
// it; concurrent use of the same instance is not supported.
type Invoice struct {
	provider *Party
	client   *Party
	creator  *Creator
	items    []*Item

	kind Kind
	mode Mode

	// PayType is a textual description of the payment type.
	PayType string

	// Number is the invoice identifier printed on the document.
	Number string

	// IBAN and SWIFT complement the provider's bank information.
	IBAN  string
	SWIFT string

	// Date is the issue date, DueDate the payment deadline, TaxableDate
	// the date of the taxable supply. Zero values mean unset.
	Date        time.Time
	DueDate     time.Time
	TaxableDate time.Time

	// Currency is the currency symbol (e.g. "€"), CurrencyLocale the BCP 47
	// locale tag driving number formatting in the renderer. The core never
	// interprets either.
	Currency       string
	CurrencyLocale string

	// Subject is the free-text subject line ("objet") of the document.
	Subject string

	// Note is free text printed below the items.
	Note string

	// RoundingEnabled quantizes Price and PriceWithTax to whole currency
	// units using the configured strategy.
	RoundingEnabled bool

	rounding RoundingStrategy

	log zerolog.Logger
}

// NewInvoice creates an invoice owning the given provider, client and
// creator, with all attributes at their documented defaults.
func NewInvoice(provider, client *Party, creator *Creator) (*Invoice, error) {
	if provider == nil || client == nil {
		return nil, ErrNilParty
	}
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &Invoice{
		provider:       provider,
		client:         client,
		creator:        creator,
		kind:           KindInvoice,
		mode:           ModeUnits,
		Currency:       "€",
		CurrencyLocale: "fr-FR",
		rounding:       RoundHalfEven,
		log:            logger.WithComponent("billing"),
	}, nil
}

// Provider returns the issuing party.
func (inv *Invoice) Provider() *Party { return inv.provider }

// Client returns the receiving party.
func (inv *Invoice) Client() *Party { return inv.client }

// Creator returns the document creator.
func (inv *Invoice) Creator() *Creator { return inv.creator }

// Kind returns the document kind.
func (inv *Invoice) Kind() Kind { return inv.kind }

// Mode returns the presentation mode.
func (inv *Invoice) Mode() Mode { return inv.mode }

// RoundingStrategy returns the configured rounding strategy.
func (inv *Invoice) RoundingStrategy() RoundingStrategy { return inv.rounding }

// SetKind assigns the document kind. An unknown kind is corrected to
// KindInvoice with a logged warning rather than rejected; callers relying on
// strict input validation must check the value beforehand.
func (inv *Invoice) SetKind(kind Kind) {
	for _, known := range kinds {
		if kind == known {
			inv.kind = kind
			return
		}
	}
	inv.log.Warn().
		Str("kind", string(kind)).
		Str("fallback", string(kinds[0])).
		Msg("Unknown invoice kind, falling back to default")
	inv.kind = kinds[0]
}

// SetMode assigns the presentation mode, with the same
// correct-and-warn policy as SetKind.
func (inv *Invoice) SetMode(mode Mode) {
	for _, known := range modes {
		if mode == known {
			inv.mode = mode
			return
		}
	}
	inv.log.Warn().
		Int("mode", int(mode)).
		Int("fallback", int(modes[0])).
		Msg("Unknown invoice mode, falling back to default")
	inv.mode = modes[0]
}

// SetRoundingStrategy assigns the rounding strategy, with the same
// correct-and-warn policy as SetKind. The default is half-even.
func (inv *Invoice) SetRoundingStrategy(strategy RoundingStrategy) {
	if strategy.valid() {
		inv.rounding = strategy
		return
	}
	inv.log.Warn().
		Str("strategy", string(strategy)).
		Str("fallback", string(RoundHalfEven)).
		Msg("Unknown rounding strategy, falling back to default")
	inv.rounding = RoundHalfEven
}

// AddItem appends an item to the invoice. Items can only be appended, never
// updated or removed.
func (inv *Invoice) AddItem(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	inv.items = append(inv.items, item)
	return nil
}

// Items returns the items in insertion order. The slice is shared with the
// invoice and must not be mutated.
func (inv *Invoice) Items() []*Item { return inv.items }

// Price returns the sum of all item totals without tax, rounded when
// rounding is enabled.
func (inv *Invoice) Price() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.items {
		sum = sum.Add(item.Total())
	}
	return inv.roundResult(sum)
}

// PriceWithTax returns the sum of all item totals including tax, rounded
// when rounding is enabled.
func (inv *Invoice) PriceWithTax() decimal.Decimal {
	return inv.roundResult(inv.priceWithTaxUnrounded())
}

// DifferenceInRounding returns the signed delta the rounding strategy
// introduces on the taxed total: rounded − unrounded. It is computed with
// the configured strategy regardless of the rounding toggle, so renderers
// can reconcile a rounded displayed total against the exact sum.
func (inv *Invoice) DifferenceInRounding() decimal.Decimal {
	price := inv.priceWithTaxUnrounded()
	return inv.rounding.apply(price).Sub(price)
}

// TaxBreakdown groups the items by exact tax rate and returns one summed row
// per distinct rate, in the order the rates first appear in the item
// sequence.
func (inv *Invoice) TaxBreakdown() []TaxGroup {
	var groups []TaxGroup
	index := make(map[string]int)
	for _, item := range inv.items {
		key := item.Tax().String()
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, TaxGroup{Rate: item.Tax()})
			i = len(groups) - 1
		}
		groups[i].Total = groups[i].Total.Add(item.Total())
		groups[i].TotalWithTax = groups[i].TotalWithTax.Add(item.TotalWithTax())
		groups[i].Tax = groups[i].Tax.Add(item.TaxAmount())
	}
	return groups
}

// ContributionLine is one computed payer-side levy: the provider's declared
// rate applied to the invoice's pre-tax total.
type ContributionLine struct {
	Label  string
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Contributions applies the provider's contribution rates to the pre-tax
// total and returns the resulting lines plus their sum. The amounts are
// informational and never part of Price or PriceWithTax.
func (inv *Invoice) Contributions() ([]ContributionLine, decimal.Decimal) {
	declared := inv.provider.Contributions
	if len(declared) == 0 {
		return nil, decimal.Zero
	}

	price := inv.Price()
	lines := make([]ContributionLine, 0, len(declared))
	sum := decimal.Zero
	for _, c := range declared {
		amount := price.Mul(c.Rate).Div(oneHundred)
		lines = append(lines, ContributionLine{Label: c.Label, Rate: c.Rate, Amount: amount})
		sum = sum.Add(amount)
	}
	return lines, sum
}

func (inv *Invoice) priceWithTaxUnrounded() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.items {
		sum = sum.Add(item.TotalWithTax())
	}
	return sum
}

func (inv *Invoice) roundResult(value decimal.Decimal) decimal.Decimal {
	if inv.RoundingEnabled {
		return inv.rounding.apply(value)
	}
	return value
}
