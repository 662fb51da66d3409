package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

func TestScreenshotRepo_SaveAndGet(t *testing.T) {
	r := NewScreenshotRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)
	taskID := insertTask(t, testDB, models.TaskTypeSimple, 50, false)
	assignmentID := insertAssignment(t, testDB, taskID, 2, models.StatusAssigned, time.Now().Add(time.Hour))

	screenshot := &models.Screenshot{AssignmentID: assignmentID, FilePath: "2/proof.jpg"}
	require.NoError(t, r.SaveScreenshot(ctx, screenshot, 5))
	assert.NotZero(t, screenshot.ID)
	assert.False(t, screenshot.UploadedAt.IsZero())

	got, err := r.GetScreenshot(ctx, screenshot.ID)
	require.NoError(t, err)
	assert.Equal(t, assignmentID, got.AssignmentID)
	assert.Equal(t, "2/proof.jpg", got.FilePath)

	_, err = r.GetScreenshot(ctx, screenshot.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrScreenshotNotFound)
}

func TestScreenshotRepo_SaveScreenshot_Cap(t *testing.T) {
	r := NewScreenshotRepository(testDB)
	ctx := context.Background()

	t.Run("insert refuses past the cap", func(t *testing.T) {
		setupTestData(t, testDB)
		taskID := insertTask(t, testDB, models.TaskTypeSimple, 50, false)
		assignmentID := insertAssignment(t, testDB, taskID, 2, models.StatusAssigned, time.Now().Add(time.Hour))
		insertScreenshot(t, testDB, assignmentID, "2/a.jpg")

		err := r.SaveScreenshot(ctx, &models.Screenshot{AssignmentID: assignmentID, FilePath: "2/b.jpg"}, 1)
		assert.ErrorIs(t, err, apperrors.ErrScreenshotLimitExceeded)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.SaveScreenshot(ctx, &models.Screenshot{AssignmentID: 999, FilePath: "2/a.jpg"}, 5)
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})

	t.Run("concurrent uploads cannot overshoot the cap", func(t *testing.T) {
		setupTestData(t, testDB)
		taskID := insertTask(t, testDB, models.TaskTypeSimple, 50, false)
		assignmentID := insertAssignment(t, testDB, taskID, 2, models.StatusAssigned, time.Now().Add(time.Hour))

		const maxShots = 2
		errs := make(chan error, 4)
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s := &models.Screenshot{AssignmentID: assignmentID, FilePath: fmt.Sprintf("2/%d.jpg", i)}
				errs <- r.SaveScreenshot(ctx, s, maxShots)
			}(i)
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, apperrors.ErrScreenshotLimitExceeded)
		}
		assert.Equal(t, maxShots, succeeded)

		count, err := r.CountByAssignment(ctx, assignmentID)
		require.NoError(t, err)
		assert.Equal(t, maxShots, count)
	})
}

func TestScreenshotRepo_GetByAssignmentAndCount(t *testing.T) {
	r := NewScreenshotRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)
	taskID := insertTask(t, testDB, models.TaskTypeSimple, 50, false)
	assignmentID := insertAssignment(t, testDB, taskID, 2, models.StatusAssigned, time.Now().Add(time.Hour))
	insertScreenshot(t, testDB, assignmentID, "2/a.jpg")
	insertScreenshot(t, testDB, assignmentID, "2/b.png")

	screenshots, err := r.GetScreenshotsByAssignment(ctx, assignmentID)
	require.NoError(t, err)
	assert.Len(t, screenshots, 2)

	count, err := r.CountByAssignment(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = r.CountByAssignment(ctx, assignmentID+100)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScreenshotRepo_DeleteScreenshot(t *testing.T) {
	r := NewScreenshotRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)
	taskID := insertTask(t, testDB, models.TaskTypeSimple, 50, false)
	assignmentID := insertAssignment(t, testDB, taskID, 2, models.StatusAssigned, time.Now().Add(time.Hour))
	screenshotID := insertScreenshot(t, testDB, assignmentID, "2/a.jpg")

	require.NoError(t, r.DeleteScreenshot(ctx, screenshotID))

	count, err := r.CountByAssignment(ctx, assignmentID)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, r.DeleteScreenshot(ctx, screenshotID), apperrors.ErrScreenshotNotFound)
}
