// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ShipmentSyncJob - Runs every minute to poll the carrier for booked
// orders still in flight and propagate status changes to local records.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sync job logs pass-level failures and keeps its schedule; per-order
// poll failures are handled inside the command handler, which skips the
// affected order and continues the pass.
package jobs
