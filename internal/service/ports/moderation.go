package ports

import (
	"context"

	"github.com/XXQ0321/charity-events/internal/domain"
)

type ModerationRepo interface {
	MarkViolated(ctx context.Context, id int64) (*domain.Event, error)
}

// ModerationNotifier tells the moderation channel about a hidden event.
// Best effort: implementations log failures instead of returning them.
type ModerationNotifier interface {
	NotifyEventHidden(ctx context.Context, event *domain.Event)
}

// ModerationPublisher fans the moderation decision out to other services.
type ModerationPublisher interface {
	PublishEventHidden(ctx context.Context, event *domain.Event) error
}
