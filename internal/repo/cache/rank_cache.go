// Package cache mirrors user high scores into a Redis sorted set so stats
// rank can be answered without a table scan. The database stays the source of
// truth; every method here is best effort.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

const highScoresKey = "arena:highscores"

type RankCache struct {
	client *redis.Client
	warmed atomic.Bool
}

func NewRankCache(client *redis.Client) *RankCache {
	return &RankCache{client: client}
}

// Warm loads every user's high score into the sorted set. Until a warm
// completes, Rank refuses to answer: a set holding only the users who
// submitted since startup would count too few higher scores.
func (c *RankCache) Warm(ctx context.Context, scores map[string]int) error {
	if c.client == nil {
		return nil
	}

	members := make([]redis.Z, 0, len(scores))
	for userID, score := range scores {
		members = append(members, redis.Z{
			Score:  float64(score),
			Member: userID,
		})
	}

	if len(members) > 0 {
		// GT keeps any better score already recorded by a concurrent submit
		if err := c.client.ZAddGT(ctx, highScoresKey, members...).Err(); err != nil {
			return fmt.Errorf("warming rank cache: %w", err)
		}
	}

	c.warmed.Store(true)
	return nil
}

// RecordHighScore stores a user's score, keeping only their best.
func (c *RankCache) RecordHighScore(ctx context.Context, userID string, score int) error {
	if c.client == nil {
		return nil
	}
	err := c.client.ZAddGT(ctx, highScoresKey, redis.Z{
		Score:  float64(score),
		Member: userID,
	}).Err()
	if err != nil {
		return fmt.Errorf("recording high score: %w", err)
	}
	return nil
}

// Rank returns the 1-based rank for a given high score: the number of users
// with a strictly greater score, plus one. ok is false when the cache cannot
// answer and the caller should fall back to the database.
func (c *RankCache) Rank(ctx context.Context, score int) (int, bool) {
	if c.client == nil || !c.warmed.Load() {
		return 0, false
	}

	higher, err := c.client.ZCount(ctx, highScoresKey, "("+strconv.Itoa(score), "+inf").Result()
	if err != nil {
		return 0, false
	}

	return int(higher) + 1, true
}
