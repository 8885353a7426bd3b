// Package jobs provides scheduled background tasks for the food delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for dispatching.
//
// # Available Jobs
//
// 1. DeliveryAssignmentJob - Runs every second to match the oldest waiting
// order with the best available delivery person
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDeliveryHandler, logger)
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
// The assignment job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps waiting orders from piling up
// between ticks.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no waiting orders, no
// available delivery persons)
// - Failed job starts will stop any already running jobs
package jobs
