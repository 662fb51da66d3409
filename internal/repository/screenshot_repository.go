package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"go.uber.org/zap"
)

type ScreenshotRepository interface {
	SaveScreenshot(ctx context.Context, screenshot *models.Screenshot, maxPerAssignment int) error
	GetScreenshot(ctx context.Context, id int64) (*models.Screenshot, error)
	GetScreenshotsByAssignment(ctx context.Context, assignmentID int64) ([]models.Screenshot, error)
	CountByAssignment(ctx context.Context, assignmentID int64) (int, error)
	DeleteScreenshot(ctx context.Context, id int64) error
}

type screenshotRepo struct {
	db *sql.DB
}

func NewScreenshotRepository(db *sql.DB) ScreenshotRepository {
	return &screenshotRepo{db: db}
}

// SaveScreenshot inserts the row after re-counting under the assignment
// row lock, so concurrent uploads cannot overshoot the cap.
func (r *screenshotRepo) SaveScreenshot(ctx context.Context, screenshot *models.Screenshot, maxPerAssignment int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var assignmentID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM task_assignments WHERE id = $1 FOR UPDATE`,
		screenshot.AssignmentID).Scan(&assignmentID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAssignmentNotFound
		return err
	}
	if err != nil {
		return err
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM screenshots WHERE assignment_id = $1`,
		screenshot.AssignmentID).Scan(&count)
	if err != nil {
		return err
	}
	if count >= maxPerAssignment {
		err = apperrors.ErrScreenshotLimitExceeded
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO screenshots (assignment_id, file_path)
		VALUES ($1, $2)
		RETURNING id, uploaded_at
	`, screenshot.AssignmentID, screenshot.FilePath).
		Scan(&screenshot.ID, &screenshot.UploadedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *screenshotRepo) GetScreenshot(ctx context.Context, id int64) (*models.Screenshot, error) {
	query := `SELECT id, assignment_id, file_path, uploaded_at FROM screenshots WHERE id = $1`

	var s models.Screenshot
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.AssignmentID, &s.FilePath, &s.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrScreenshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *screenshotRepo) GetScreenshotsByAssignment(ctx context.Context, assignmentID int64) ([]models.Screenshot, error) {
	query := `
		SELECT id, assignment_id, file_path, uploaded_at
		FROM screenshots
		WHERE assignment_id = $1
		ORDER BY uploaded_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, assignmentID)
	if err != nil {
		logger.Log.Error("failed to query screenshots", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var screenshots []models.Screenshot
	for rows.Next() {
		var s models.Screenshot
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.FilePath, &s.UploadedAt); err != nil {
			logger.Log.Error("failed to scan screenshot", zap.Error(err))
			return nil, err
		}
		screenshots = append(screenshots, s)
	}
	return screenshots, rows.Err()
}

func (r *screenshotRepo) CountByAssignment(ctx context.Context, assignmentID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM screenshots WHERE assignment_id = $1`, assignmentID).Scan(&count)
	return count, err
}

func (r *screenshotRepo) DeleteScreenshot(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM screenshots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrScreenshotNotFound
	}
	return nil
}
