package jobs

import (
	"fmt"
	"log/slog"

	"bananex/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryReminderJob *DeliveryReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orders services.OrderService, logger *slog.Logger) *JobManager {
	return &JobManager{
		deliveryReminderJob: NewDeliveryReminderJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryReminderJob.Stop()
}
