package billing

import (
	"github.com/shopspring/decimal"
)

// RoundingStrategy selects how invoice totals are quantized to whole
// currency units when rounding is enabled.
type RoundingStrategy string

// Supported rounding strategies.
const (
	// RoundHalfUp rounds .5 away from zero.
	RoundHalfUp RoundingStrategy = "half-up"

	// RoundHalfDown rounds .5 towards zero.
	RoundHalfDown RoundingStrategy = "half-down"

	// RoundHalfEven rounds .5 to the nearest even digit (bankers'
	// rounding). This is the default strategy.
	RoundHalfEven RoundingStrategy = "half-even"

	// RoundCeiling rounds towards positive infinity.
	RoundCeiling RoundingStrategy = "ceiling"

	// RoundFloor rounds towards negative infinity.
	RoundFloor RoundingStrategy = "floor"

	// RoundTruncate drops the fractional part.
	RoundTruncate RoundingStrategy = "truncate"
)

var roundingStrategies = []RoundingStrategy{
	RoundHalfUp,
	RoundHalfDown,
	RoundHalfEven,
	RoundCeiling,
	RoundFloor,
	RoundTruncate,
}

var half = decimal.New(5, -1)

// apply quantizes value to zero fractional digits under the strategy.
// Invoices round to whole currency units, the precision is not configurable.
func (s RoundingStrategy) apply(value decimal.Decimal) decimal.Decimal {
	switch s {
	case RoundHalfUp:
		return value.Round(0)
	case RoundHalfDown:
		// On an exact .5 tie, drop the fraction instead of rounding away
		// from zero.
		if value.Sub(value.Truncate(0)).Abs().Equal(half) {
			return value.Truncate(0)
		}
		return value.Round(0)
	case RoundHalfEven:
		return value.RoundBank(0)
	case RoundCeiling:
		return value.RoundCeil(0)
	case RoundFloor:
		return value.RoundFloor(0)
	case RoundTruncate:
		return value.Truncate(0)
	default:
		return value.RoundBank(0)
	}
}

// valid reports whether s is one of the supported strategies.
func (s RoundingStrategy) valid() bool {
	for _, known := range roundingStrategies {
		if s == known {
			return true
		}
	}
	return false
}
