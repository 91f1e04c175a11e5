// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for running the front of house.
//
// # Available Jobs
//
// 1. OpenOrdersReportJob - Runs every minute to report orders that have not reached completion
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uncompletedOrdersHandler, logger)
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
// The report job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. The report gives kitchen staff a rolling view
// of tables still waiting on food or sitting with unpaid orders.
package jobs
