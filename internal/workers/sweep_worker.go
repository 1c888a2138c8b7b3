package workers

import (
	"context"
	"time"

	"intervue_backend/internal/logger"
	"intervue_backend/internal/repositories"
)

// SweepWorker periodically flips stale upcoming interviews to completed.
// The update predicate (status + scheduled_at) makes every pass idempotent,
// so overlapping runs from multiple instances converge to the same state.
type SweepWorker struct {
	interviewRepo repositories.InterviewRepository
	interval      time.Duration
}

func NewSweepWorker(interviewRepo repositories.InterviewRepository, interval time.Duration) *SweepWorker {
	return &SweepWorker{
		interviewRepo: interviewRepo,
		interval:      interval,
	}
}

// Start launches the sweep loop. It runs once immediately and then on
// every tick until ctx is cancelled.
func (w *SweepWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *SweepWorker) loop(ctx context.Context) {
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("sweep worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SweepWorker) sweep() {
	swept, err := w.interviewRepo.CompleteExpired("", time.Now())
	if err != nil {
		logger.WorkerLog("sweep_worker", "complete_expired", err)
		return
	}
	if swept > 0 {
		logger.Info("auto-completed expired interviews", "count", swept)
	}
}
