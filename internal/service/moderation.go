package service

import (
	"context"

	"github.com/XXQ0321/charity-events/internal/metrics"
	"github.com/XXQ0321/charity-events/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ModerationService struct {
	repo      ports.ModerationRepo
	notifier  ports.ModerationNotifier
	publisher ports.ModerationPublisher
	log       logger.Logger
}

func NewModerationService(
	repo ports.ModerationRepo,
	notifier ports.ModerationNotifier,
	publisher ports.ModerationPublisher,
	log logger.Logger,
) *ModerationService {
	return &ModerationService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Violate hides the event from every public read. Notification and fan-out
// are best effort: the hide has already committed, so their failures are
// logged, not surfaced.
func (s *ModerationService) Violate(ctx context.Context, id int64) error {
	event, err := s.repo.MarkViolated(ctx, id)
	if err != nil {
		return err
	}

	metrics.EventsHidden.Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishEventHidden(ctx, event); err != nil {
			s.log.Error("publish hidden event",
				logger.Int64("event_id", event.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyEventHidden(ctx, event)
	}

	s.log.Info("event hidden by moderation",
		logger.Int64("event_id", event.ID),
		logger.String("name", event.Name),
		logger.String("category", event.Category),
	)

	return nil
}
