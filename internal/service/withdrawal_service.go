package service

import (
	"context"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/notify"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/utils"
)

type WithdrawalService interface {
	CreateWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	repo     repository.WithdrawalRepository
	notifier notify.Notifier
	cfg      *config.Config
}

func NewWithdrawalService(repo repository.WithdrawalRepository, notifier notify.Notifier, cfg *config.Config) WithdrawalService {
	return &withdrawalService{repo: repo, notifier: notifier, cfg: cfg}
}

// CreateWithdrawal validates the request and reserves the amount as a
// pending row. Requisites are checked before any balance is looked at, so
// a malformed card never makes it to the reservation transaction.
func (s *withdrawalService) CreateWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	details, err := utils.ValidateWithdrawalDetails(req.Method, req.Details)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 || req.Amount > s.cfg.MaxWithdrawal {
		return nil, apperrors.ErrInvalidWithdrawalAmount
	}
	if req.Amount < s.cfg.MinWithdrawal {
		return nil, apperrors.ErrBelowMinWithdrawal
	}

	withdrawal := &models.Withdrawal{
		UserID:  userID,
		Amount:  req.Amount,
		Method:  req.Method,
		Details: details,
	}
	if err := s.repo.CreateWithdrawal(ctx, withdrawal, s.cfg.MaxPendingWithdrawals); err != nil {
		return nil, err
	}

	// fire-and-forget: a slow Telegram API must not delay the response
	go s.notifier.WithdrawalRequested(context.WithoutCancel(ctx), withdrawal)
	return withdrawal, nil
}

func (s *withdrawalService) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.repo.GetWithdrawalsByUser(ctx, userID)
}
