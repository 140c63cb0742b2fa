// Package job holds scheduled background work.
package job

import (
	"context"
	"errors"
	"path"
	"time"

	"go.uber.org/zap"

	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/storage"
)

// DefaultMinAge protects files written by an upload that has not committed yet
const DefaultMinAge = 10 * time.Minute

// OrphanCleanupJob removes stored files that no File row references
type OrphanCleanupJob struct {
	fileRepo repository.FileRepository
	storage  storage.FileStorage
	minAge   time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrphanCleanupJob creates a new OrphanCleanupJob. minAge <= 0 uses DefaultMinAge.
func NewOrphanCleanupJob(
	fileRepo repository.FileRepository,
	fileStorage storage.FileStorage,
	minAge time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OrphanCleanupJob {
	if minAge <= 0 {
		minAge = DefaultMinAge
	}
	return &OrphanCleanupJob{
		fileRepo: fileRepo,
		storage:  fileStorage,
		minAge:   minAge,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Run implements cron.Job
func (j *OrphanCleanupJob) Run() {
	if _, err := j.RunOnce(context.Background()); err != nil {
		j.logger.Error("Orphan cleanup failed", zap.Error(err))
	}
}

// RunOnce deletes every unreferenced stored file older than minAge and returns
// how many were deleted. Individual delete failures are logged and skipped.
func (j *OrphanCleanupJob) RunOnce(ctx context.Context) (int, error) {
	j.logger.Debug("Starting orphan file cleanup")

	// List storage before reading references so a file committed in between is
	// always seen as referenced.
	objects, err := j.storage.List(ctx)
	if err != nil {
		return 0, err
	}

	paths, err := j.fileRepo.ListFilePaths(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		referenced[path.Base(p)] = struct{}{}
	}

	cutoff := j.now().Add(-j.minAge)
	deleted, failed, young := 0, 0, 0
	for _, obj := range objects {
		if _, ok := referenced[obj.Name]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			young++
			continue
		}

		if err := j.storage.Delete(ctx, obj.Name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			j.logger.Warn("Failed to delete orphan file",
				zap.String("stored_name", obj.Name),
				zap.Error(err),
			)
			failed++
			continue
		}
		deleted++

		j.logger.Debug("Deleted orphan file", zap.String("stored_name", obj.Name))
	}

	if j.metrics != nil && deleted > 0 {
		j.metrics.AddOrphanFilesDeleted(deleted)
	}

	j.logger.Info("Orphan file cleanup completed",
		zap.Int("stored", len(objects)),
		zap.Int("referenced", len(referenced)),
		zap.Int("deleted", deleted),
		zap.Int("failed", failed),
		zap.Int("too_recent", young),
	)
	return deleted, nil
}
