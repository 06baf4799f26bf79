package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

// Round arredonda com meio para cima em aritmética decimal
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
