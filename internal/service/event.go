package service

import (
	"context"
	"fmt"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/service/ports"
)

const dateLayout = "2006-01-02"

// ListEventsQuery carries the raw, still unvalidated filter values the way
// the transport received them. Empty string means the field was not supplied.
type ListEventsQuery struct {
	Category string
	Location string
	DateFrom string
	DateTo   string
	Status   string
}

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) List(ctx context.Context, q ListEventsQuery) ([]*domain.AnnotatedEvent, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.AnnotatedEvent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) ListByCategory(ctx context.Context, category string) ([]*domain.AnnotatedEvent, error) {
	events, err := s.repo.List(ctx, domain.EventFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("list events by category: %w", err)
	}

	return events, nil
}

func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// buildFilter validates the raw query and normalizes it into a filter.
// Malformed dates and unknown status values are validation errors; they are
// rejected here and never reach the store.
func buildFilter(q ListEventsQuery) (domain.EventFilter, error) {
	f := domain.EventFilter{
		Category: q.Category,
		Location: q.Location,
	}

	if q.DateFrom != "" {
		t, err := time.Parse(dateLayout, q.DateFrom)
		if err != nil {
			return f, fmt.Errorf("%w: invalid dateFrom %q, expected YYYY-MM-DD", domain.ErrValidation, q.DateFrom)
		}
		f.DateFrom = &t
	}

	if q.DateTo != "" {
		t, err := time.Parse(dateLayout, q.DateTo)
		if err != nil {
			return f, fmt.Errorf("%w: invalid dateTo %q, expected YYYY-MM-DD", domain.ErrValidation, q.DateTo)
		}
		f.DateTo = &t
	}

	if q.Status != "" {
		st, err := domain.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = st
	}

	return f, nil
}
