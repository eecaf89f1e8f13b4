package orderbuilder

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

func roundNormal(value float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Round(value*multiplier) / multiplier
}

func roundDown(value float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Floor(value*multiplier) / multiplier
}

func roundUp(value float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Ceil(value*multiplier) / multiplier
}

func decimalPlaces(value float64) int {
	places := int(-decimal.NewFromFloat(value).Exponent())
	if places < 0 {
		return 0
	}
	return places
}

// toTokenUnits converts a collateral or share amount into the 6-decimal
// on-chain integer representation.
func toTokenUnits(amount float64) *big.Int {
	rounded := math.Round(amount * 1e6)
	if rounded == 0 && amount > 0 {
		rounded = 1
	}
	return big.NewInt(int64(rounded))
}
