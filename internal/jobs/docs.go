// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, maxAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleOrderJob runs every minute and cancels orders that have sat pending
// and unpaid for longer than the configured age. Each run is independent:
// errors are logged and the next tick retries.
package jobs
