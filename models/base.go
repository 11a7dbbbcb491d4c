package models

import "github.com/shopspring/decimal"

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
