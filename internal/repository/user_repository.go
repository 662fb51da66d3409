package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

type UserRepository interface {
	UpsertUser(ctx context.Context, telegramID int64, username *string, firstName string, referredBy *int64) (*models.User, error)
	GetUser(ctx context.Context, telegramID int64) (*models.User, error)
	UserExists(ctx context.Context, telegramID int64) (bool, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

// UpsertUser registers the user on first call and refreshes display fields
// on every later login. referred_by is write-once: the COALESCE keeps the
// stored value whenever it is already set.
func (r *userRepo) UpsertUser(ctx context.Context, telegramID int64, username *string, firstName string, referredBy *int64) (*models.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, first_name, referred_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			referred_by = COALESCE(users.referred_by, EXCLUDED.referred_by)
		RETURNING telegram_id, username, first_name, main_balance, referral_balance, referred_by, created_at
	`
	row := r.db.QueryRowContext(ctx, query, telegramID, username, firstName, referredBy)

	var user models.User
	err := row.Scan(&user.TelegramID, &user.Username, &user.FirstName,
		&user.MainBalance, &user.ReferralBalance, &user.ReferredBy, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetUser(ctx context.Context, telegramID int64) (*models.User, error) {
	query := `
		SELECT telegram_id, username, first_name, main_balance, referral_balance, referred_by, created_at
		FROM users WHERE telegram_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, telegramID)

	var user models.User
	err := row.Scan(&user.TelegramID, &user.Username, &user.FirstName,
		&user.MainBalance, &user.ReferralBalance, &user.ReferredBy, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UserExists(ctx context.Context, telegramID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE telegram_id = $1)`, telegramID).Scan(&exists)
	return exists, err
}
