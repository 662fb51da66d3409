package service

import (
	"context"
	"time"

	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/repository"
	"github.com/avdeenkov/avito-tasker/internal/storage"
	"go.uber.org/zap"
)

const sweepBatchSize = 50

// Sweeper reclaims assignments whose deadline has passed: the task goes
// back to the pool, the assignment and its screenshots are dropped.
type Sweeper struct {
	repo     repository.AssignmentRepository
	files    storage.FileStore
	interval time.Duration
}

func NewSweeper(repo repository.AssignmentRepository, files storage.FileStore, interval time.Duration) *Sweeper {
	return &Sweeper{
		repo:     repo,
		files:    files,
		interval: interval,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one bounded pass. Every assignment is reclaimed in its own
// transaction, so a failure on one leaves the rest for the next pass, and
// a reclaim lost to a concurrent sweep or cancel counts as done.
func (s *Sweeper) Sweep(ctx context.Context) {
	ids, err := s.repo.ExpiredAssignmentIDs(ctx, sweepBatchSize)
	if err != nil {
		logger.Log.Error("failed to list expired assignments", zap.Error(err))
		return
	}

	reclaimed := 0
	for _, id := range ids {
		paths, ok, err := s.repo.ReclaimAssignment(ctx, id)
		if err != nil {
			logger.Log.Error("failed to reclaim assignment", zap.Int64("assignment", id), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}

		reclaimed++
		deleteBlobs(s.files, paths)
	}

	if reclaimed > 0 {
		logger.Log.Info("reclaimed expired assignments", zap.Int("count", reclaimed))
	}
}
