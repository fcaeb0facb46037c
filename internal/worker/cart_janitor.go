package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CartPurger exposes the subset of application functionality required by the janitor.
type CartPurger interface {
	PurgeStaleCarts(ctx context.Context, olderThan time.Duration, limit int) (int64, error)
}

// CartJanitor periodically deletes cart lines that have not been touched
// within the configured TTL.
type CartJanitor struct {
	purger        CartPurger
	sweepInterval time.Duration
	ttl           time.Duration
	batchSize     int
	logger        *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartJanitor constructs the cart janitor.
func NewCartJanitor(purger CartPurger, sweepInterval, ttl time.Duration, batchSize int, logger *slog.Logger) *CartJanitor {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CartJanitor{
		purger:        purger,
		sweepInterval: sweepInterval,
		ttl:           ttl,
		batchSize:     batchSize,
		logger:        logger,
	}
}

// Start launches background sweeping.
func (j *CartJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (j *CartJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *CartJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *CartJanitor) sweep(ctx context.Context) {
	removed, err := j.purger.PurgeStaleCarts(ctx, j.ttl, j.batchSize)
	if err != nil {
		j.logger.Error("stale cart sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		j.logger.Info("purged stale cart lines", slog.Int64("removed", removed))
	}
}
