package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal, maxPending int) error
	GetWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id int64) error
	RejectWithdrawal(ctx context.Context, id int64) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

// CreateWithdrawal reserves funds by inserting a pending row. The user row
// is locked first, then the user's pending rows — every reservation takes
// locks in that order, so two concurrent requests cannot both see the same
// available figure. No balance is debited here: the pending row itself is
// the reservation.
func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal, maxPending int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var mainBalance, referralBalance int64
	err = tx.QueryRowContext(ctx, `
		SELECT main_balance, referral_balance FROM users
		WHERE telegram_id = $1
		FOR UPDATE
	`, withdrawal.UserID).Scan(&mainBalance, &referralBalance)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrUserNotFound
		return err
	}
	if err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT amount FROM withdrawals
		WHERE user_id = $1 AND status = 'pending'
		FOR UPDATE
	`, withdrawal.UserID)
	if err != nil {
		return err
	}

	var pendingSum int64
	pendingCount := 0
	for rows.Next() {
		var amount int64
		if err = rows.Scan(&amount); err != nil {
			_ = rows.Close()
			return err
		}
		pendingSum += amount
		pendingCount++
	}
	if err = rows.Err(); err != nil {
		return err
	}
	if err = rows.Close(); err != nil {
		return err
	}

	if pendingCount >= maxPending {
		err = apperrors.ErrTooManyPending
		return err
	}

	available := mainBalance + referralBalance - pendingSum
	if available < withdrawal.Amount {
		err = apperrors.ErrInsufficientBalance
		return err
	}

	details, err := json.Marshal(withdrawal.Details)
	if err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, amount, method, details, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, status, created_at
	`, withdrawal.UserID, withdrawal.Amount, withdrawal.Method, details).Scan(
		&withdrawal.ID, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *withdrawalRepo) GetWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, method, details, status, created_at, processed_at
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryWithdrawals(ctx, query, userID)
}

func (r *withdrawalRepo) GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, method, details, status, created_at, processed_at
		FROM withdrawals
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`
	return r.queryWithdrawals(ctx, query)
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		var details []byte
		err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Method, &details,
			&w.Status, &w.CreatedAt, &w.ProcessedAt)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(details, &w.Details); err != nil {
			logger.Log.Error("failed to unmarshal withdrawal details", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

// ApproveWithdrawal debits the reserved amount: main balance first, the
// referral balance covers the remainder. The reservation guarantees the
// combined balance is sufficient, but the re-check keeps a corrupted state
// from driving a balance negative.
//
// Lock order matches CreateWithdrawal: user row first, withdrawal rows
// after. The withdrawal is read unlocked to learn the user, and re-read
// under lock once the user row is held, so the status check stays valid.
func (r *withdrawalRepo) ApproveWithdrawal(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var userID int64
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM withdrawals WHERE id = $1`, id).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrWithdrawalNotFound
		return err
	}
	if err != nil {
		return err
	}

	var mainBalance, referralBalance int64
	err = tx.QueryRowContext(ctx, `
		SELECT main_balance, referral_balance FROM users
		WHERE telegram_id = $1
		FOR UPDATE
	`, userID).Scan(&mainBalance, &referralBalance)
	if err != nil {
		return err
	}

	var amount int64
	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT amount, status FROM withdrawals
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&amount, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrWithdrawalNotFound
		return err
	}
	if err != nil {
		return err
	}

	if status != models.WithdrawalStatusPending {
		err = apperrors.ErrInvalidStatus
		return err
	}

	if mainBalance+referralBalance < amount {
		err = apperrors.ErrInsufficientBalance
		return err
	}

	mainDebit := amount
	if mainDebit > mainBalance {
		mainDebit = mainBalance
	}
	referralDebit := amount - mainDebit

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET main_balance = main_balance - $1,
		    referral_balance = referral_balance - $2
		WHERE telegram_id = $3
	`, mainDebit, referralDebit, userID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status = 'approved', processed_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RejectWithdrawal releases the reservation; nothing was debited, so only
// the status changes.
func (r *withdrawalRepo) RejectWithdrawal(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM withdrawals WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrWithdrawalNotFound
		return err
	}
	if err != nil {
		return err
	}

	if status != models.WithdrawalStatusPending {
		err = apperrors.ErrInvalidStatus
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status = 'rejected', processed_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}
