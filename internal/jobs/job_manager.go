package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"store/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCancellationJob *StaleOrderCancellationJob
	expiredDiscountPurgeJob   *ExpiredDiscountPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and job timings as dependencies.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	purgeExpiredDiscountsHandler commands.PurgeExpiredDiscountsCommandHandler,
	orderMaxAge time.Duration,
	discountRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCancellationJob: NewStaleOrderCancellationJob(cancelStaleOrdersHandler, orderMaxAge, logger),
		expiredDiscountPurgeJob:   NewExpiredDiscountPurgeJob(purgeExpiredDiscountsHandler, discountRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order cancellation job: %w", err)
	}

	if err := jm.expiredDiscountPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderCancellationJob.Stop()
		return fmt.Errorf("failed to start expired discount purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderCancellationJob.Stop()
	jm.expiredDiscountPurgeJob.Stop()
}
