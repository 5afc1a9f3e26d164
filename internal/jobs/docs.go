// Package jobs provides scheduled background tasks for the banana export service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order book.
//
// # Available Jobs
//
// 1. DeliveryReminderJob - Runs daily at 07:00 and logs every order whose
// delivery date falls within the next week.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderService, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next scheduled run; the job never
// stops itself on transient store errors.
package jobs
