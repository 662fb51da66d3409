package service

import (
	"context"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/storage"
)

type ScreenshotService interface {
	UploadScreenshot(ctx context.Context, userID, assignmentID int64, data []byte, contentType string) (*models.Screenshot, error)
	GetScreenshots(ctx context.Context, userID, assignmentID int64) ([]models.Screenshot, error)
	DeleteScreenshot(ctx context.Context, userID, screenshotID int64) error
}

type screenshotService struct {
	repo        repository.ScreenshotRepository
	assignments repository.AssignmentRepository
	files       storage.FileStore
	cfg         *config.Config
}

func NewScreenshotService(repo repository.ScreenshotRepository, assignments repository.AssignmentRepository, files storage.FileStore, cfg *config.Config) ScreenshotService {
	return &screenshotService{repo: repo, assignments: assignments, files: files, cfg: cfg}
}

// UploadScreenshot stores the proof image. The blob is written before the
// DB row so a row never points at a missing file; if the insert fails the
// blob is removed again.
func (s *screenshotService) UploadScreenshot(ctx context.Context, userID, assignmentID int64, data []byte, contentType string) (*models.Screenshot, error) {
	assignment, err := s.assignments.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if assignment.Status != models.StatusAssigned {
		return nil, apperrors.ErrInvalidStatus
	}

	if !storage.AllowedContentType(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}
	if int64(len(data)) > s.cfg.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	// early cap check saves writing a blob that the insert would refuse;
	// the authoritative count runs again under the assignment row lock
	count, err := s.repo.CountByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if count >= s.cfg.MaxScreenshots {
		return nil, apperrors.ErrScreenshotLimitExceeded
	}

	path, err := s.files.Save(userID, assignmentID, data, contentType)
	if err != nil {
		return nil, err
	}

	screenshot := &models.Screenshot{AssignmentID: assignmentID, FilePath: path}
	if err := s.repo.SaveScreenshot(ctx, screenshot, s.cfg.MaxScreenshots); err != nil {
		deleteBlobs(s.files, []string{path})
		return nil, err
	}
	return screenshot, nil
}

func (s *screenshotService) GetScreenshots(ctx context.Context, userID, assignmentID int64) ([]models.Screenshot, error) {
	assignment, err := s.assignments.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.GetScreenshotsByAssignment(ctx, assignmentID)
}

// DeleteScreenshot removes one proof image before submission. Owner only,
// and only while the assignment is still in work.
func (s *screenshotService) DeleteScreenshot(ctx context.Context, userID, screenshotID int64) error {
	screenshot, err := s.repo.GetScreenshot(ctx, screenshotID)
	if err != nil {
		return err
	}

	assignment, err := s.assignments.GetAssignment(ctx, screenshot.AssignmentID)
	if err != nil {
		return err
	}
	if assignment.UserID != userID {
		return apperrors.ErrForbidden
	}
	if assignment.Status != models.StatusAssigned {
		return apperrors.ErrInvalidStatus
	}

	if err := s.repo.DeleteScreenshot(ctx, screenshotID); err != nil {
		return err
	}

	deleteBlobs(s.files, []string{screenshot.FilePath})
	return nil
}
