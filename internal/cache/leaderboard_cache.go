package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// LeaderboardCache handles Redis ZSET operations for a room's live
// leaderboard. Members are team names in team mode and player ids otherwise;
// scores are floats because speed bonuses award half points.
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, roomCode, member string, score float64) error
	GetTop(ctx context.Context, roomCode string, limit int) ([]LeaderboardEntry, error)
	GetRank(ctx context.Context, roomCode, member string) (int64, error)
	Delete(ctx context.Context, roomCode string) error
}

// LeaderboardEntry represents a single leaderboard entry
type LeaderboardEntry struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
	Rank   int     `json:"rank"`
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) key(roomCode string) string {
	return fmt.Sprintf("room:%s:lb", roomCode)
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, roomCode, member string, score float64) error {
	return c.client.ZAdd(ctx, c.key(roomCode), redis.Z{
		Score:  score,
		Member: member,
	}).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, roomCode string, limit int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(roomCode), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = LeaderboardEntry{
			Member: z.Member.(string),
			Score:  z.Score,
			Rank:   i + 1,
		}
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, roomCode, member string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(roomCode), member).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

func (c *leaderboardCache) Delete(ctx context.Context, roomCode string) error {
	return c.client.Del(ctx, c.key(roomCode)).Err()
}
