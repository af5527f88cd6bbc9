package scheduler

import (
	"context"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type catalogReader interface {
	List(ctx context.Context, f domain.EventFilter) ([]*domain.AnnotatedEvent, error)
	Categories(ctx context.Context) ([]string, error)
}

// Scheduler periodically refreshes the catalog gauges: visible events per
// lifecycle status and the distinct category count. The status counts come
// from the same classification the read paths use.
type Scheduler struct {
	catalog  catalogReader
	interval time.Duration
	logger   logger.Logger
}

func New(catalog catalogReader, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		catalog:  catalog,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	events, err := s.catalog.List(ctx, domain.EventFilter{})
	if err != nil {
		s.logger.Error("failed to refresh status gauges",
			logger.String("error", err.Error()),
		)
		return
	}

	counts := map[domain.Status]int{
		domain.StatusPast:     0,
		domain.StatusOngoing:  0,
		domain.StatusUpcoming: 0,
	}
	for _, e := range events {
		counts[e.Status]++
	}
	for status, n := range counts {
		metrics.EventsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}

	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		s.logger.Error("failed to refresh category gauge",
			logger.String("error", err.Error()),
		)
		return
	}
	metrics.CategoriesTotal.Set(float64(len(categories)))
}
