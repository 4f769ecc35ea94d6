package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settingsRefreshJob *SettingsRefreshJob
	pickupReminderJob  *PickupReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	settingsRepository ports.SettingsRepository,
	settingsStore *settings.Store,
	pickupManifestHandler queries.GetOrdersForPickupDateQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settingsRefreshJob: NewSettingsRefreshJob(settingsRepository, settingsStore, logger),
		pickupReminderJob:  NewPickupReminderJob(pickupManifestHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settingsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start settings refresh job: %w", err)
	}

	if err := jm.pickupReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.settingsRefreshJob.Stop()
		return fmt.Errorf("failed to start pickup reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupReminderJob.Stop()
	jm.settingsRefreshJob.Stop()
}
