package models

import "time"

const (
	WithdrawalMethodCard = "card"
	WithdrawalMethodSBP  = "sbp"
)

const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalDetails carries method-specific requisites. Card withdrawals
// fill CardNumber/CardholderName, SBP ones fill BankName/PhoneNumber.
type WithdrawalDetails struct {
	CardNumber     string `json:"card_number,omitempty"`
	CardholderName string `json:"cardholder_name,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
}

type Withdrawal struct {
	ID          int64             `json:"id" db:"id"`
	UserID      int64             `json:"-" db:"user_id"`
	Amount      int64             `json:"amount" db:"amount"`
	Method      string            `json:"method" db:"method"`
	Details     WithdrawalDetails `json:"details" db:"details"`
	Status      string            `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time        `json:"processed_at" db:"processed_at"`
}

type WithdrawalRequest struct {
	Amount  int64             `json:"amount"`
	Method  string            `json:"method"`
	Details WithdrawalDetails `json:"details"`
}
