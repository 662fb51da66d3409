package models

import "time"

type User struct {
	TelegramID      int64     `json:"telegram_id" db:"telegram_id"`
	Username        *string   `json:"username" db:"username"`
	FirstName       string    `json:"first_name" db:"first_name"`
	MainBalance     int64     `json:"main_balance" db:"main_balance"`
	ReferralBalance int64     `json:"referral_balance" db:"referral_balance"`
	ReferredBy      *int64    `json:"referred_by" db:"referred_by"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
