package utils

import "github.com/shopspring/decimal"

// ReferralCommission computes round(price * rate) as exact integer
// currency units, rounded half away from zero.
func ReferralCommission(price int64, rate float64) int64 {
	commission := decimal.NewFromInt(price).Mul(decimal.NewFromFloat(rate))
	return commission.Round(0).IntPart()
}
