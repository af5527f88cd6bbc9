package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// RedisPublisher fans moderation decisions out on a pub/sub channel so other
// services (search index, front page cache) can drop the event. Publish-only:
// no read path of this service goes through redis.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     logger.Logger
}

func NewRedisPublisher(addr, password string, db int, channel string, log logger.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisPublisher{
		client:  client,
		channel: channel,
		log:     log,
	}, nil
}

type eventHiddenMessage struct {
	Type     string `json:"type"`
	EventID  int64  `json:"event_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	HiddenAt string `json:"hidden_at"`
}

func (p *RedisPublisher) PublishEventHidden(ctx context.Context, event *domain.Event) error {
	payload, err := json.Marshal(eventHiddenMessage{
		Type:     "event.hidden",
		EventID:  event.ID,
		Name:     event.Name,
		Category: event.Category,
		HiddenAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal moderation message: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish moderation message: %w", err)
	}

	p.log.Debug("moderation message published",
		logger.String("channel", p.channel),
		logger.Int64("event_id", event.ID),
	)

	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
