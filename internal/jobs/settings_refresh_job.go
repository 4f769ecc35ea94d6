package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/settings"
	"laundry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SettingsRefreshJob periodically reloads pricing and service-area
// configuration from the settings table and swaps it into the live store.
// Runs every five minutes so admin edits reach the booking flow without a
// restart.
type SettingsRefreshJob struct {
	repository ports.SettingsRepository
	store      *settings.Store
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSettingsRefreshJob creates a new job for refreshing settings.
// Reads the raw settings table and replaces the store's snapshot.
func NewSettingsRefreshJob(
	repository ports.SettingsRepository,
	store *settings.Store,
	logger *slog.Logger,
) *SettingsRefreshJob {
	return &SettingsRefreshJob{
		repository: repository,
		store:      store,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "settings_refresh_job"),
	}
}

// Start refreshes settings once immediately, then every five minutes.
// The immediate refresh means the first booking after startup already sees
// stored configuration instead of the built-in defaults.
func (j *SettingsRefreshJob) Start() error {
	j.refresh(context.Background())

	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		j.refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settings refresh job started (running every 5 minutes)")
	return nil
}

// Stop stops the settings refresh job.
func (j *SettingsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settings refresh job stopped")
}

func (j *SettingsRefreshJob) refresh(ctx context.Context) {
	raw, err := j.repository.GetAll(ctx)
	if err != nil {
		// Keep serving the previous snapshot; a transient read failure must
		// not degrade pricing to defaults.
		j.logger.ErrorContext(ctx, "Settings refresh failed", "error", err)
		return
	}

	j.store.Replace(settings.Parse(raw))
	j.logger.InfoContext(ctx, "Settings refreshed", "keys", len(raw))
}
