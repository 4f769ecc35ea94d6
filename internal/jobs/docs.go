// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service needs.
//
// # Available Jobs
//
// 1. SettingsRefreshJob - Runs every five minutes to reload pricing and
// service-area configuration into the live settings store
// 2. PickupReminderJob - Runs daily at 18:00 to emit reminders for the next
// day's scheduled pickups
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(settingsRepo, settingsStore, pickupHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The refresh job keeps the previous settings snapshot when a read fails
// - The reminder job logs query failures and tries again the next evening
// - Failed job starts will stop any already running jobs
package jobs
