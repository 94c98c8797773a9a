package jobs

import (
	"context"
	"log/slog"
	"time"

	"store/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob cancels orders that were never paid.
// Runs every minute and cancels orders waiting for payment longer than maxAge.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for canceling stale orders.
// Uses CancelStaleOrdersCommandHandler to process cancellations every minute.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", err)
			return
		}

		canceled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
			return
		}

		if canceled > 0 {
			j.logger.InfoContext(ctx, "Canceled stale orders", "count", canceled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
