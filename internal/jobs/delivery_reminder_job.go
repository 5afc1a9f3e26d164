package jobs

import (
	"context"
	"log/slog"
	"time"

	"bananex/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// reminderWindowDays is how far ahead the reminder looks for upcoming deliveries.
const reminderWindowDays = 7

// DeliveryReminderJob scans the order book every morning and logs every order
// whose delivery date falls within the next week, so the warehouse can plan
// picking and shipping ahead of time.
type DeliveryReminderJob struct {
	orders services.OrderService
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDeliveryReminderJob creates the reminder job. The scan runs daily at 07:00.
func NewDeliveryReminderJob(orders services.OrderService, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "delivery_reminder_job"),
	}
}

// Start schedules the daily scan.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 7 * * *", func() {
		j.remind(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running daily at 07:00)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

func (j *DeliveryReminderJob) remind(ctx context.Context) {
	orders, err := j.orders.ListAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery reminder scan failed", "error", err)
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, reminderWindowDays)

	due := 0
	for _, ord := range orders {
		date := ord.DeliveryDate()
		if date.Before(today) || date.After(horizon) {
			continue
		}
		due++
		rec := ord.Recipient()
		j.logger.InfoContext(ctx, "Upcoming delivery",
			"orderId", ord.ID(),
			"recipient", rec.Name(),
			"city", rec.City(),
			"deliveryDate", date.Format(time.DateOnly),
			"bananaQuantityKg", ord.BananaQuantity(),
		)
	}

	j.logger.InfoContext(ctx, "Delivery reminder scan finished", "ordersDue", due)
}
