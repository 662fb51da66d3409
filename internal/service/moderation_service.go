package service

import (
	"context"

	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/repository"
)

// ModerationService is the privileged surface: it is never reachable with
// a performer's session token.
type ModerationService interface {
	GetPendingAssignments(ctx context.Context) ([]models.Assignment, error)
	ApproveAssignment(ctx context.Context, id int64) error
	RejectAssignment(ctx context.Context, id int64) error
	GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id int64) error
	RejectWithdrawal(ctx context.Context, id int64) error
}

type moderationService struct {
	assignments repository.AssignmentRepository
	withdrawals repository.WithdrawalRepository
	cfg         *config.Config
}

func NewModerationService(assignments repository.AssignmentRepository, withdrawals repository.WithdrawalRepository, cfg *config.Config) ModerationService {
	return &moderationService{assignments: assignments, withdrawals: withdrawals, cfg: cfg}
}

func (s *moderationService) GetPendingAssignments(ctx context.Context) ([]models.Assignment, error) {
	return s.assignments.GetSubmittedAssignments(ctx)
}

func (s *moderationService) ApproveAssignment(ctx context.Context, id int64) error {
	return s.assignments.ApproveAssignment(ctx, id, s.cfg.ReferralCommission)
}

func (s *moderationService) RejectAssignment(ctx context.Context, id int64) error {
	return s.assignments.RejectAssignment(ctx, id)
}

func (s *moderationService) GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.withdrawals.GetPendingWithdrawals(ctx)
}

func (s *moderationService) ApproveWithdrawal(ctx context.Context, id int64) error {
	return s.withdrawals.ApproveWithdrawal(ctx, id)
}

func (s *moderationService) RejectWithdrawal(ctx context.Context, id int64) error {
	return s.withdrawals.RejectWithdrawal(ctx, id)
}
