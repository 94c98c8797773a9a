package jobs

import (
	"context"
	"log/slog"
	"time"

	"store/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpiredDiscountPurgeJob removes expired promo code discounts from storage.
// Runs hourly; expired codes no longer resolve anyway, this keeps the table small.
type ExpiredDiscountPurgeJob struct {
	handler   commands.PurgeExpiredDiscountsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewExpiredDiscountPurgeJob creates a new job for purging expired discounts.
// Uses PurgeExpiredDiscountsCommandHandler to delete rows every hour.
func NewExpiredDiscountPurgeJob(
	handler commands.PurgeExpiredDiscountsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *ExpiredDiscountPurgeJob {
	return &ExpiredDiscountPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "expired_discount_purge_job"),
	}
}

// Start begins the discount purge job to run at the top of every hour.
func (j *ExpiredDiscountPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeExpiredDiscountsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired discount purge job misconfigured", "error", err)
			return
		}

		deleted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired discount purge job failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Purged expired discounts", "count", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired discount purge job started (running hourly)")
	return nil
}

// Stop stops the discount purge job.
func (j *ExpiredDiscountPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expired discount purge job stopped")
}
