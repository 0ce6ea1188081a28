package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent retorna achieved/target em pontos percentuais com duas casas.
// Sem meta positiva o percentual é zero.
func Percent(achieved, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}

	value, _ := achieved.Div(target).Mul(hundred).Float64()
	return RoundWithTwoDecimalPlace(value)
}
