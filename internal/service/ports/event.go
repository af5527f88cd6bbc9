package ports

import (
	"context"

	"github.com/XXQ0321/charity-events/internal/domain"
)

type EventRepo interface {
	List(ctx context.Context, f domain.EventFilter) ([]*domain.AnnotatedEvent, error)
	GetByID(ctx context.Context, id int64) (*domain.AnnotatedEvent, error)
	Categories(ctx context.Context) ([]string, error)
}
