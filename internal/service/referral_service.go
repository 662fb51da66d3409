package service

import (
	"context"
	"fmt"

	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/utils"
)

type ReferralService interface {
	GetReferralLink(userID int64) string
	GetReferralStats(ctx context.Context, userID int64) (models.ReferralStats, error)
	GetReferralList(ctx context.Context, userID int64) ([]models.ReferralSummary, error)
}

type referralService struct {
	repo repository.ReferralRepository
	cfg  *config.Config
}

func NewReferralService(repo repository.ReferralRepository, cfg *config.Config) ReferralService {
	return &referralService{repo: repo, cfg: cfg}
}

func (s *referralService) GetReferralLink(userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", s.cfg.BotUsername, utils.GenerateReferralToken(userID))
}

func (s *referralService) GetReferralStats(ctx context.Context, userID int64) (models.ReferralStats, error) {
	return s.repo.GetReferralStats(ctx, userID)
}

func (s *referralService) GetReferralList(ctx context.Context, userID int64) ([]models.ReferralSummary, error) {
	return s.repo.GetReferralList(ctx, userID)
}
