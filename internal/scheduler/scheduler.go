package scheduler

import (
	"context"
	"log/slog"
	"time"

	"dqx_news/internal/domain"
	"dqx_news/internal/service"
)

// Scanner runs listing scans.
type Scanner interface {
	ScanAll(ctx context.Context, mode domain.ScanMode) ([]domain.ScanStats, error)
}

// Queuer builds the recheck queue.
type Queuer interface {
	RecheckQueue(ctx context.Context, limit int) ([]service.RecheckItem, error)
}

// Rechecker re-fetches a single overdue body.
type Rechecker interface {
	RecheckBody(ctx context.Context, id string) (bool, error)
}

// Scheduler periodically scans all categories and drains the recheck queue.
type Scheduler struct {
	scanner      Scanner
	queuer       Queuer
	rechecker    Rechecker
	interval     time.Duration
	recheckLimit int
	logger       *slog.Logger
}

func NewScheduler(
	scanner Scanner,
	queuer Queuer,
	rechecker Rechecker,
	interval time.Duration,
	recheckLimit int,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		scanner:      scanner,
		queuer:       queuer,
		rechecker:    rechecker,
		interval:     interval,
		recheckLimit: recheckLimit,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if _, err := s.scanner.ScanAll(cycleCtx, domain.ScanIncremental); err != nil {
		s.logger.Error("scan cycle failed", "error", err)
	}

	queue, err := s.queuer.RecheckQueue(cycleCtx, s.recheckLimit)
	if err != nil {
		s.logger.Error("build recheck queue", "error", err)
		return
	}

	rechecked := 0
	for _, entry := range queue {
		ok, err := s.rechecker.RecheckBody(cycleCtx, entry.ItemID)
		if err != nil {
			s.logger.Error("recheck body", "id", entry.ItemID, "error", err)
			continue
		}
		if ok {
			rechecked++
		}
	}

	if len(queue) > 0 {
		s.logger.Info("recheck cycle completed", "due", len(queue), "rechecked", rechecked)
	}
}
