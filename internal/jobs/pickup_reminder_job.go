package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PickupReminderJob sends evening reminders for the next day's pickups.
// Runs daily at 18:00, queries tomorrow's manifest, and emits one reminder
// per scheduled order.
type PickupReminderJob struct {
	handler queries.GetOrdersForPickupDateQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates a new job for pickup reminders.
// Uses GetOrdersForPickupDateQueryHandler to load the next day's manifest.
func NewPickupReminderJob(
	handler queries.GetOrdersForPickupDateQueryHandler,
	logger *slog.Logger,
) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start begins the pickup reminder job to run daily at 18:00.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 18 * * *", func() {
		j.remind(context.Background(), time.Now().AddDate(0, 0, 1))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running daily at 18:00)")
	return nil
}

// Stop stops the pickup reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

func (j *PickupReminderJob) remind(ctx context.Context, date time.Time) {
	query, err := queries.NewGetOrdersForPickupDateQuery(date)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
		return
	}

	// Reminders are log lines for now; a notification channel plugs in here
	// once the product grows one.
	for _, order := range orders {
		j.logger.InfoContext(ctx, "Pickup reminder",
			"orderId", order.ID.String(),
			"customer", order.CustomerName,
			"date", date.Format("2006-01-02"),
			"timeSlot", order.PickupTimeSlot.String(),
		)
	}

	j.logger.InfoContext(ctx, "Pickup reminders sent",
		"date", date.Format("2006-01-02"), "count", len(orders))
}
