package workers

import (
	"context"
	"time"

	"intervue_backend/internal/logger"
	"intervue_backend/internal/services"
)

// ReminderWorker drives the reminder dispatcher on a fixed interval. All
// de-duplication state lives in the reminder_logs table, so concurrent or
// repeated invocations stay safe.
type ReminderWorker struct {
	reminderService services.ReminderService
	interval        time.Duration
}

func NewReminderWorker(reminderService services.ReminderService, interval time.Duration) *ReminderWorker {
	return &ReminderWorker{
		reminderService: reminderService,
		interval:        interval,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *ReminderWorker) loop(ctx context.Context) {
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *ReminderWorker) run(ctx context.Context) {
	err := w.reminderService.Run(ctx, time.Now())
	logger.WorkerLog("reminder_worker", "dispatch", err)
}
