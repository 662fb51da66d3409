package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/avdeenkov/avito-tasker/internal/utils"
	"go.uber.org/zap"
)

type AssignmentRepository interface {
	ClaimTask(ctx context.Context, userID int64, taskType string, maxActive int, lockFor time.Duration) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	GetActiveAssignments(ctx context.Context, userID int64) ([]models.Assignment, error)
	GetSubmittedAssignments(ctx context.Context) ([]models.Assignment, error)
	CancelAssignment(ctx context.Context, id, userID int64) ([]string, error)
	SubmitAssignment(ctx context.Context, id, userID int64, phoneNumber *string) (*models.Assignment, error)
	ApproveAssignment(ctx context.Context, id int64, commissionRate float64) error
	RejectAssignment(ctx context.Context, id int64) error
	ExpiredAssignmentIDs(ctx context.Context, limit int) ([]int64, error)
	ReclaimAssignment(ctx context.Context, id int64) ([]string, bool, error)
}

type assignmentRepo struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func rollbackOnError(tx *sql.Tx, err *error) {
	if *err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Log.Error("rollback error", zap.Error(rbErr))
		}
	}
}

// ClaimTask checks out a random available task of the requested type for
// the user. The whole claim runs in one transaction: the user's own
// assigned rows are locked first (which serializes concurrent claims by
// the same user), then the chosen task row. The random pick does not lock,
// so availability is re-checked once the row lock is held.
func (r *assignmentRepo) ClaimTask(ctx context.Context, userID int64, taskType string, maxActive int, lockFor time.Duration) (assignment *models.Assignment, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollbackOnError(tx, &err)

	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM task_assignments
		WHERE user_id = $1 AND status = 'assigned'
		FOR UPDATE
	`, userID)
	if err != nil {
		return nil, err
	}

	activeCount := 0
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, err
		}
		activeCount++
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}

	if activeCount >= maxActive {
		err = apperrors.ErrTaskLimitExceeded
		return nil, err
	}

	task := &models.Task{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, type, avito_url, message_text, price, is_available, created_at
		FROM tasks
		WHERE type = $1 AND is_available
		ORDER BY random()
		LIMIT 1
	`, taskType).Scan(&task.ID, &task.Type, &task.AvitoURL, &task.MessageText,
		&task.Price, &task.IsAvailable, &task.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrNoTasksAvailable
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var stillAvailable bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_available FROM tasks WHERE id = $1 FOR UPDATE`, task.ID).Scan(&stillAvailable)
	if err != nil {
		return nil, err
	}
	if !stillAvailable {
		err = apperrors.ErrTaskNotAvailable
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET is_available = FALSE WHERE id = $1`, task.ID)
	if err != nil {
		return nil, err
	}
	task.IsAvailable = false

	assignment = &models.Assignment{TaskID: task.ID, UserID: userID, Task: task}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO task_assignments (task_id, user_id, status, deadline)
		VALUES ($1, $2, 'assigned', $3)
		RETURNING id, status, deadline, assigned_at
	`, task.ID, userID, time.Now().Add(lockFor)).Scan(
		&assignment.ID, &assignment.Status, &assignment.Deadline, &assignment.AssignedAt)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return assignment, nil
}

func scanAssignmentWithTask(row interface{ Scan(...any) error }) (*models.Assignment, error) {
	a := &models.Assignment{Task: &models.Task{}}
	err := row.Scan(
		&a.ID, &a.TaskID, &a.UserID, &a.Status, &a.Deadline,
		&a.PhoneNumber, &a.AssignedAt, &a.SubmittedAt,
		&a.Task.ID, &a.Task.Type, &a.Task.AvitoURL, &a.Task.MessageText,
		&a.Task.Price, &a.Task.IsAvailable, &a.Task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

const assignmentWithTaskColumns = `
	a.id, a.task_id, a.user_id, a.status, a.deadline,
	a.phone_number, a.assigned_at, a.submitted_at,
	t.id, t.type, t.avito_url, t.message_text, t.price, t.is_available, t.created_at
`

func (r *assignmentRepo) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentWithTaskColumns + `
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		WHERE a.id = $1
	`
	assignment, err := scanAssignmentWithTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepo) GetActiveAssignments(ctx context.Context, userID int64) ([]models.Assignment, error) {
	query := `
		SELECT ` + assignmentWithTaskColumns + `
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		WHERE a.user_id = $1 AND a.status IN ('assigned', 'submitted')
		ORDER BY a.assigned_at DESC
	`
	return r.queryAssignments(ctx, query, userID)
}

func (r *assignmentRepo) GetSubmittedAssignments(ctx context.Context) ([]models.Assignment, error) {
	query := `
		SELECT ` + assignmentWithTaskColumns + `
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		WHERE a.status = 'submitted'
		ORDER BY a.submitted_at ASC
	`
	return r.queryAssignments(ctx, query)
}

func (r *assignmentRepo) queryAssignments(ctx context.Context, query string, args ...any) ([]models.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query assignments", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var assignments []models.Assignment
	for rows.Next() {
		a, err := scanAssignmentWithTask(rows)
		if err != nil {
			logger.Log.Error("failed to scan assignment", zap.Error(err))
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

// CancelAssignment releases the task back to the pool and hard-deletes the
// assignment with its screenshot rows. It returns the blob paths so the
// caller can clean the files up after commit.
func (r *assignmentRepo) CancelAssignment(ctx context.Context, id, userID int64) (paths []string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollbackOnError(tx, &err)

	var ownerID, taskID int64
	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, task_id, status FROM task_assignments
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&ownerID, &taskID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAssignmentNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if ownerID != userID {
		err = apperrors.ErrForbidden
		return nil, err
	}
	if status != models.StatusAssigned {
		err = apperrors.ErrInvalidStatus
		return nil, err
	}

	paths, err = screenshotPathsTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET is_available = TRUE WHERE id = $1`, taskID)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM task_assignments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return paths, nil
}

// SubmitAssignment moves an assignment from assigned to submitted. Phone
// format validation happens in the service; here the state is re-checked
// under the row lock so a racing cancel or sweep loses cleanly.
func (r *assignmentRepo) SubmitAssignment(ctx context.Context, id, userID int64, phoneNumber *string) (assignment *models.Assignment, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollbackOnError(tx, &err)

	var ownerID int64
	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, status FROM task_assignments
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&ownerID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAssignmentNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if ownerID != userID {
		err = apperrors.ErrForbidden
		return nil, err
	}
	if status != models.StatusAssigned {
		err = apperrors.ErrInvalidStatus
		return nil, err
	}

	var screenshots int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM screenshots WHERE assignment_id = $1`, id).Scan(&screenshots)
	if err != nil {
		return nil, err
	}
	if screenshots == 0 {
		err = apperrors.ErrScreenshotRequired
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE task_assignments
		SET status = 'submitted', submitted_at = now(), phone_number = $2
		WHERE id = $1
	`, id, phoneNumber)
	if err != nil {
		return nil, err
	}

	assignment, err = scanAssignmentWithTask(tx.QueryRowContext(ctx, `
		SELECT `+assignmentWithTaskColumns+`
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		WHERE a.id = $1
	`, id))
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ApproveAssignment settles a submitted assignment: terminal status, price
// credited to the performer, task returned to the pool, and the referral
// commission ledgered and credited when the performer was referred. All of
// it commits atomically or not at all.
func (r *assignmentRepo) ApproveAssignment(ctx context.Context, id int64, commissionRate float64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var (
		ownerID, taskID, price int64
		status, taskType       string
		referredBy             *int64
		ownerUsername          *string
	)
	err = tx.QueryRowContext(ctx, `
		SELECT a.user_id, a.task_id, a.status, t.price, t.type, u.referred_by, u.username
		FROM task_assignments a
		JOIN tasks t ON t.id = a.task_id
		JOIN users u ON u.telegram_id = a.user_id
		WHERE a.id = $1
		FOR UPDATE OF a
	`, id).Scan(&ownerID, &taskID, &status, &price, &taskType, &referredBy, &ownerUsername)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAssignmentNotFound
		return err
	}
	if err != nil {
		return err
	}

	if status != models.StatusSubmitted {
		err = apperrors.ErrInvalidStatus
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE task_assignments SET status = 'approved' WHERE id = $1`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET main_balance = main_balance + $1 WHERE telegram_id = $2`, price, ownerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET is_available = TRUE WHERE id = $1`, taskID)
	if err != nil {
		return err
	}

	if referredBy != nil {
		commission := utils.ReferralCommission(price, commissionRate)

		_, err = tx.ExecContext(ctx, `
			INSERT INTO referral_earnings (referrer_id, referral_id, amount, task_assignment_id, task_type, referral_username)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, *referredBy, ownerID, commission, id, taskType, ownerUsername)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE users SET referral_balance = referral_balance + $1 WHERE telegram_id = $2`,
			commission, *referredBy)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RejectAssignment keeps the terminal row and its screenshots for audit;
// only the task goes back to the pool.
func (r *assignmentRepo) RejectAssignment(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackOnError(tx, &err)

	var taskID int64
	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT task_id, status FROM task_assignments
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&taskID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAssignmentNotFound
		return err
	}
	if err != nil {
		return err
	}

	if status != models.StatusSubmitted {
		err = apperrors.ErrInvalidStatus
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE task_assignments SET status = 'rejected' WHERE id = $1`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET is_available = TRUE WHERE id = $1`, taskID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *assignmentRepo) ExpiredAssignmentIDs(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id FROM task_assignments
		WHERE status = 'assigned' AND deadline < now()
		ORDER BY deadline ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReclaimAssignment reclaims one expired assignment in its own transaction.
// SKIP LOCKED makes concurrent sweeps (and racing cancels) partition the
// work: losing the lock, or the row being gone, is a no-op, not an error.
func (r *assignmentRepo) ReclaimAssignment(ctx context.Context, id int64) (paths []string, reclaimed bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer rollbackOnError(tx, &err)

	var taskID int64
	err = tx.QueryRowContext(ctx, `
		SELECT task_id FROM task_assignments
		WHERE id = $1 AND status = 'assigned' AND deadline < now()
		FOR UPDATE SKIP LOCKED
	`, id).Scan(&taskID)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.Rollback()
		return nil, false, err
	}
	if err != nil {
		return nil, false, err
	}

	paths, err = screenshotPathsTx(ctx, tx, id)
	if err != nil {
		return nil, false, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET is_available = TRUE WHERE id = $1`, taskID)
	if err != nil {
		return nil, false, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM task_assignments WHERE id = $1`, id)
	if err != nil {
		return nil, false, err
	}

	if err = tx.Commit(); err != nil {
		return nil, false, err
	}
	return paths, true, nil
}

func screenshotPathsTx(ctx context.Context, tx *sql.Tx, assignmentID int64) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT file_path FROM screenshots WHERE assignment_id = $1`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
