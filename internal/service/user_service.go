package service

import (
	"context"
	"time"

	"github.com/avdeenkov/avito-tasker/internal/auth"
	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/utils"
	"go.uber.org/zap"
)

type UserService interface {
	Authenticate(ctx context.Context, initData string) (*models.User, error)
	GetUser(ctx context.Context, telegramID int64) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewUserService(repo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{repo: repo, cfg: cfg}
}

// Authenticate verifies the Telegram init data and registers the user on
// first contact. A referral token in start_param binds the referrer once;
// malformed, self-referencing or unknown tokens are ignored silently so a
// stale invite link never breaks login.
func (s *userService) Authenticate(ctx context.Context, initData string) (*models.User, error) {
	data, err := auth.ValidateInitData(initData, s.cfg.BotToken, time.Now())
	if err != nil {
		return nil, err
	}

	referredBy := s.resolveReferrer(ctx, data)

	var username *string
	if data.User.Username != "" {
		username = &data.User.Username
	}

	return s.repo.UpsertUser(ctx, data.User.ID, username, data.User.FirstName, referredBy)
}

func (s *userService) resolveReferrer(ctx context.Context, data *auth.InitData) *int64 {
	referrerID, ok := utils.ParseReferralToken(data.StartParam)
	if !ok || referrerID == data.User.ID {
		return nil
	}

	exists, err := s.repo.UserExists(ctx, referrerID)
	if err != nil {
		logger.Log.Warn("failed to check referrer existence", zap.Int64("referrer", referrerID), zap.Error(err))
		return nil
	}
	if !exists {
		return nil
	}
	return &referrerID
}

func (s *userService) GetUser(ctx context.Context, telegramID int64) (*models.User, error) {
	return s.repo.GetUser(ctx, telegramID)
}
