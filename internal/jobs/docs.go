// Package jobs provides scheduled background tasks for the cleaning service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AvailabilityRefreshJob - Periodically rebuilds the cleaner availability
// index from the order store to reconcile any drift.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(index, orderRepository, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule uses the six-field cron form with a seconds column and
// is supplied through configuration. The index is also updated in place after
// every committed command, so the rebuild cadence only bounds how long drift
// can persist, not how fresh the index normally is.
package jobs
