package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"brainybunch/internal/model"
)

// RoomCache mirrors slim room metadata into Redis so REST reads and ops
// tooling never touch the in-memory registry. Implements game.Mirror.
type RoomCache interface {
	SetMeta(ctx context.Context, meta *model.RoomMeta) error
	GetMeta(ctx context.Context, code string) (*model.RoomMeta, error)
	Delete(ctx context.Context, code string) error
}

type roomCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomCache creates a new room cache
func NewRoomCache(client *redis.Client) RoomCache {
	return &roomCache{
		client: client,
		ttl:    24 * time.Hour, // Mirrors expire after 24h
	}
}

func (c *roomCache) key(code string) string {
	return fmt.Sprintf("room:%s", code)
}

func (c *roomCache) SetMeta(ctx context.Context, meta *model.RoomMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(meta.Code), data, c.ttl).Err()
}

func (c *roomCache) GetMeta(ctx context.Context, code string) (*model.RoomMeta, error) {
	data, err := c.client.Get(ctx, c.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta model.RoomMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *roomCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, c.key(code)).Err()
}
