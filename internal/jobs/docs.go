// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RouteProgressionJob - Advances every in-transit route by one stop per tick,
// completing the orders addressed to the reached city and closing routes that
// ran out of stops
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(routeRepository, &advanceHandler, "*/30 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions with a leading seconds field. The
// progression job is only created when a schedule is configured; in production
// routes are usually advanced through the HTTP API instead.
//
// # Error Handling
//
// - Routes changed concurrently (stale version, already terminal) are skipped at debug level
// - Every other failure is logged and counted, and the tick moves on to the next route
// - Failed job starts are reported by StartAll
package jobs
