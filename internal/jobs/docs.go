// Package jobs provides scheduled background tasks for the store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order flow leaves behind.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel orders that stayed in WaitingPayment too long
// 2. ExpiredDiscountPurgeJob - Runs hourly to delete promo code discounts past their expiry
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelHandler, purgeHandler, 30*time.Minute, 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Job errors are logged, never fatal; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
