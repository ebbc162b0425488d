package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gammazero/workerpool"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

const publishTimeout = 10 * time.Second

// Dispatcher fans campaign events out to every sink on a bounded worker
// pool so request handlers never wait on downstream delivery. Sink errors
// are logged and dropped.
type Dispatcher struct {
	pool   *workerpool.WorkerPool
	sinks  []port.EventPublisher
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher starts a pool of workers delivering to sinks.
func NewDispatcher(workers int, logger *slog.Logger, sinks ...port.EventPublisher) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		pool:   workerpool.New(workers),
		sinks:  sinks,
		logger: logger,
	}
}

// Publish queues ev for every sink. It returns immediately; delivery is
// detached from ctx cancellation but keeps its values.
func (d *Dispatcher) Publish(ctx context.Context, ev domain.CampaignEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warn("event dropped after shutdown",
			slog.String("type", string(ev.Type)),
			slog.String("campaign_id", ev.CampaignID.String()),
		)
		return nil
	}
	base := context.WithoutCancel(ctx)
	for _, sink := range d.sinks {
		d.pool.Submit(func() {
			ctx, cancel := context.WithTimeout(base, publishTimeout)
			defer cancel()
			if err := sink.Publish(ctx, ev); err != nil {
				d.logger.Error("deliver campaign event",
					slog.String("type", string(ev.Type)),
					slog.String("campaign_id", ev.CampaignID.String()),
					slog.Any("error", err),
				)
			}
		})
	}
	return nil
}

// Close stops accepting events and waits for queued deliveries.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.pool.StopWait()
}
