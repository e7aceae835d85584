package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda valores monetários para centavos
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
