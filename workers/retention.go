package workers

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner is the slice of the fortune service the worker needs.
type Cleaner interface {
	CleanupOldRecords(retentionDays int) (int, error)
}

// RetentionWorker periodically deletes quota records past the retention
// window so the store does not grow without bound. It runs on its own
// schedule and never touches the request path.
type RetentionWorker struct {
	log      *slog.Logger
	cleaner  Cleaner
	interval time.Duration
	days     int
}

func NewRetentionWorker(log *slog.Logger, cleaner Cleaner, interval time.Duration, days int) *RetentionWorker {
	return &RetentionWorker{log: log, cleaner: cleaner, interval: interval, days: days}
}

// Run sweeps once per interval until the context is cancelled.
func (w *RetentionWorker) Run(ctx context.Context) error {
	w.log.Info("Starting retention worker", "interval", w.interval, "retention_days", w.days)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *RetentionWorker) sweep() {
	deleted, err := w.cleaner.CleanupOldRecords(w.days)
	if err != nil {
		w.log.Error("Retention sweep failed", "err", err)
		return
	}
	if deleted > 0 {
		w.log.Info("Retention sweep done", "deleted", deleted)
	}
}
