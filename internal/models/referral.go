package models

import "time"

type ReferralEarning struct {
	ID               int64     `json:"id" db:"id"`
	ReferrerID       int64     `json:"referrer_id" db:"referrer_id"`
	ReferralID       int64     `json:"referral_id" db:"referral_id"`
	Amount           int64     `json:"amount" db:"amount"`
	AssignmentID     *int64    `json:"task_assignment_id" db:"task_assignment_id"`
	TaskType         *string   `json:"task_type" db:"task_type"`
	ReferralUsername *string   `json:"referral_username" db:"referral_username"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type ReferralStats struct {
	ReferralsCount int64 `json:"referrals_count"`
	TotalEarned    int64 `json:"total_earned"`
}

// ReferralSummary is one row of the per-referral earnings breakdown.
type ReferralSummary struct {
	ReferralID int64     `json:"referral_id"`
	Username   *string   `json:"username"`
	Earned     int64     `json:"earned"`
	TasksCount int64     `json:"tasks_count"`
	JoinedAt   time.Time `json:"joined_at"`
}
