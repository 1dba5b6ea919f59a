package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderSchedule fires once a day at 09:00 server time, early enough to
// nudge customers before the kitchen plans the day.
const reminderSchedule = "0 9 * * *"

// PaymentReminderJob periodically sweeps accepted orders with an
// outstanding balance and sends their customers a reminder.
type PaymentReminderJob struct {
	handler commands.SendPaymentRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReminderJob creates the daily payment reminder job.
func NewPaymentReminderJob(
	handler commands.SendPaymentRemindersCommandHandler,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_reminder_job"),
	}
}

// Start schedules the daily reminder sweep.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderSchedule, func() {
		ctx := context.Background()

		sent, handleErr := j.handler.Handle(ctx, commands.NewSendPaymentRemindersCommand())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "payment reminder sweep failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "payment reminder sweep finished", "reminders", sent)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "payment reminder job started", "schedule", reminderSchedule)
	return nil
}

// Stop stops the reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "payment reminder job stopped")
}
