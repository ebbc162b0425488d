package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"saathi-bazaar/internal/config/configs"
	"saathi-bazaar/internal/core/domain"
)

// publisher is the subset of *redis.Client used here.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// EventPublisher implements port.EventPublisher on a Redis pub/sub
// channel. Events are JSON encoded.
type EventPublisher struct {
	client  publisher
	channel string
}

// NewEventPublisher returns a publisher writing to channel through client.
func NewEventPublisher(client publisher, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

// NewClient builds a Redis client from cfg and checks it is reachable.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		ClientName: "saathi-bazaar",
		Addr:       cfg.Addr,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func (p *EventPublisher) Publish(ctx context.Context, ev domain.CampaignEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", ev.Type, err)
	}
	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s event for campaign %s: %w", ev.Type, ev.CampaignID, err)
	}
	return nil
}
