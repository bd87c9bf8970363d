package menu

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ToMinorUnits converts a major-unit price (12.50) into integer minor
// units (1250), rounding half away from zero.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	if price.IsNegative() {
		return 0, ErrInvalidPrice
	}
	minor := price.Shift(2).Round(0)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, ErrInvalidPrice
	}
	return minor.IntPart(), nil
}

func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
