package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron"
)

// Expirer fails overdue campaigns. It is satisfied by the ledger use case.
type Expirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// Sweeper periodically fails open campaigns whose deadline has passed, so
// downstream collaborators learn about failures without waiting for a read.
type Sweeper struct {
	cron    *cron.Cron
	expirer Expirer
	logger  *slog.Logger
	ctx     context.Context

	running sync.Mutex
}

// NewSweeper schedules the sweep with a cron spec such as "@every 1m" or a
// six-field expression with seconds. ctx bounds every run.
func NewSweeper(ctx context.Context, expirer Expirer, spec string, logger *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:    cron.New(),
		expirer: expirer,
		logger:  logger,
		ctx:     ctx,
	}
	if err := s.cron.AddFunc(spec, func() { s.RunOnce(s.ctx) }); err != nil {
		return nil, fmt.Errorf("schedule sweep %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule. A sweep already running is not interrupted.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// RunOnce performs a single sweep. Overlapping runs are skipped.
func (s *Sweeper) RunOnce(ctx context.Context) {
	if !s.running.TryLock() {
		s.logger.Debug("sweep already running")
		return
	}
	defer s.running.Unlock()

	n, err := s.expirer.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("sweep overdue campaigns", slog.Int("expired", n), slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.Info("overdue campaigns failed", slog.Int("expired", n))
	}
}
