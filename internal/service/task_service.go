package service

import (
	"context"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/notify"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/storage"
	"github.com/avdeenkov/avito-tasker/internal/utils"
	"go.uber.org/zap"
)

type TaskService interface {
	ClaimTask(ctx context.Context, userID int64, taskType string) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id, userID int64) (*models.Assignment, error)
	GetActiveAssignments(ctx context.Context, userID int64) ([]models.Assignment, error)
	CancelAssignment(ctx context.Context, id, userID int64) error
	SubmitAssignment(ctx context.Context, id, userID int64, phoneNumber string) (*models.Assignment, error)
}

type taskService struct {
	repo     repository.AssignmentRepository
	files    storage.FileStore
	notifier notify.Notifier
	cfg      *config.Config
}

func NewTaskService(repo repository.AssignmentRepository, files storage.FileStore, notifier notify.Notifier, cfg *config.Config) TaskService {
	return &taskService{repo: repo, files: files, notifier: notifier, cfg: cfg}
}

func (s *taskService) ClaimTask(ctx context.Context, userID int64, taskType string) (*models.Assignment, error) {
	if !models.ValidTaskType(taskType) {
		return nil, apperrors.ErrInvalidTaskType
	}
	return s.repo.ClaimTask(ctx, userID, taskType, s.cfg.MaxActiveTasks, s.cfg.TaskLockDuration())
}

func (s *taskService) GetAssignment(ctx context.Context, id, userID int64) (*models.Assignment, error) {
	assignment, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return assignment, nil
}

func (s *taskService) GetActiveAssignments(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return s.repo.GetActiveAssignments(ctx, userID)
}

func (s *taskService) CancelAssignment(ctx context.Context, id, userID int64) error {
	paths, err := s.repo.CancelAssignment(ctx, id, userID)
	if err != nil {
		return err
	}

	deleteBlobs(s.files, paths)
	return nil
}

// SubmitAssignment validates the submission and hands the assignment to
// moderation. Phone-type tasks require the contact phone in the strict
// +7XXXXXXXXXX form; for simple tasks the phone is discarded.
func (s *taskService) SubmitAssignment(ctx context.Context, id, userID int64, phoneNumber string) (*models.Assignment, error) {
	assignment, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if assignment.Status != models.StatusAssigned {
		return nil, apperrors.ErrInvalidStatus
	}

	var phone *string
	if assignment.Task.Type == models.TaskTypePhone {
		if !utils.IsValidPhoneNumber(phoneNumber) {
			return nil, apperrors.ErrInvalidPhoneNumber
		}
		phone = &phoneNumber
	}

	submitted, err := s.repo.SubmitAssignment(ctx, id, userID, phone)
	if err != nil {
		return nil, err
	}

	// fire-and-forget: a slow Telegram API must not delay the response
	go s.notifier.AssignmentSubmitted(context.WithoutCancel(ctx), submitted, submitted.Task)
	return submitted, nil
}

// deleteBlobs removes screenshot files after their DB rows are gone.
// Failures are logged and swallowed: the database is already consistent
// without the files.
func deleteBlobs(files storage.FileStore, paths []string) {
	for _, path := range paths {
		if err := files.Delete(path); err != nil {
			logger.Log.Warn("failed to delete screenshot blob", zap.String("path", path), zap.Error(err))
		}
	}
}
