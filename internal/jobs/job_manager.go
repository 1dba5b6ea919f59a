package jobs

import (
	"fmt"
	"log/slog"

	"catering/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	paymentReminderJob *PaymentReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	sendRemindersHandler commands.SendPaymentRemindersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReminderJob: NewPaymentReminderJob(sendRemindersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
}
