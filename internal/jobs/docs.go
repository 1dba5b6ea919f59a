// Package jobs provides the scheduled background tasks of the catering
// service, built on github.com/robfig/cron/v3.
//
// The only job today is PaymentReminderJob, a daily sweep that reminds
// customers of accepted orders with an outstanding balance. Jobs are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sendRemindersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
