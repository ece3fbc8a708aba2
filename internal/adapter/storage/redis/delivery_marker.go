package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DeliveryMarker implements ports.DeliveryMarker using Redis SET NX.
// It keeps webhook deliveries exactly-once across notifier restarts.
type DeliveryMarker struct {
	client *goredis.Client
	prefix string
}

// NewDeliveryMarker creates a new Redis-backed delivery marker.
func NewDeliveryMarker(client *goredis.Client) *DeliveryMarker {
	return &DeliveryMarker{
		client: client,
		prefix: "delivered:",
	}
}

// FirstDelivery atomically records the event id, returning true if this
// is the first attempt and false if the event was already delivered.
func (m *DeliveryMarker) FirstDelivery(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	result, err := m.client.SetArgs(ctx, m.prefix+eventID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, event was already delivered
			return false, nil
		}
		return false, fmt.Errorf("redis delivery marker: %w", err)
	}
	return result == "OK", nil
}
