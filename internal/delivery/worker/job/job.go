// Package job runs periodic background work inside the worker process.
package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"provenance/internal/domain/lifecycle"

	"go.uber.org/fx"
)

// periodicJob runs fn every interval until the fx lifecycle stops.
// Runs never overlap; a slow run delays the next tick.
type periodicJob struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

func newPeriodicJob(lc fx.Lifecycle, name string, interval time.Duration, logger *slog.Logger, fn func(ctx context.Context) error) *periodicJob {
	job := &periodicJob{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger.With(slog.String("job", name)),
		done:     make(chan struct{}),
	}

	lc.Append(fx.Hook{
		OnStop: job.stop,
	})

	return job
}

// Serve blocks until the job is stopped or ctx ends.
func (j *periodicJob) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	j.mu.Lock()
	if j.stopped {
		j.mu.Unlock()
		cancel()

		return nil
	}
	j.cancel = cancel
	j.mu.Unlock()

	defer close(j.done)
	defer cancel()

	j.logger.Info("Starting background job", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.runOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (j *periodicJob) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error("Background job panicked", slog.Any("panic", r))
		}
	}()

	if err := j.fn(ctx); err != nil && ctx.Err() == nil {
		j.logger.Error("Background job run failed", slog.Any("error", err))
	}
}

func (j *periodicJob) stop(ctx context.Context) error {
	j.mu.Lock()
	j.stopped = true
	cancel := j.cancel
	j.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-j.done:
	case <-stopCtx.Done():
		j.logger.Warn("Background job did not stop in time")
	}

	return nil
}
