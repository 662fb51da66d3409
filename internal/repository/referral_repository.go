package repository

import (
	"context"
	"database/sql"

	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"go.uber.org/zap"
)

type ReferralRepository interface {
	GetReferralStats(ctx context.Context, referrerID int64) (models.ReferralStats, error)
	GetReferralList(ctx context.Context, referrerID int64) ([]models.ReferralSummary, error)
}

type referralRepo struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) ReferralRepository {
	return &referralRepo{db: db}
}

func (r *referralRepo) GetReferralStats(ctx context.Context, referrerID int64) (models.ReferralStats, error) {
	var stats models.ReferralStats
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE referred_by = $1),
			COALESCE((SELECT SUM(amount) FROM referral_earnings WHERE referrer_id = $1), 0)
	`
	err := r.db.QueryRowContext(ctx, query, referrerID).
		Scan(&stats.ReferralsCount, &stats.TotalEarned)
	if err != nil {
		logger.Log.Error("failed to get referral stats", zap.Error(err))
		return models.ReferralStats{}, err
	}
	return stats, nil
}

// GetReferralList returns every referred user with their accumulated
// contribution, including those who have not completed a task yet.
func (r *referralRepo) GetReferralList(ctx context.Context, referrerID int64) ([]models.ReferralSummary, error) {
	query := `
		SELECT u.telegram_id, u.username,
			COALESCE(SUM(e.amount), 0), COUNT(e.id), u.created_at
		FROM users u
		LEFT JOIN referral_earnings e ON e.referral_id = u.telegram_id AND e.referrer_id = $1
		WHERE u.referred_by = $1
		GROUP BY u.telegram_id, u.username, u.created_at
		ORDER BY u.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, referrerID)
	if err != nil {
		logger.Log.Error("failed to query referral list", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var referrals []models.ReferralSummary
	for rows.Next() {
		var s models.ReferralSummary
		if err := rows.Scan(&s.ReferralID, &s.Username, &s.Earned, &s.TasksCount, &s.JoinedAt); err != nil {
			logger.Log.Error("failed to scan referral summary", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, s)
	}
	return referrals, rows.Err()
}
