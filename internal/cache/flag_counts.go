package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const flagCountKeyPrefix = "spm:flag_count:"

// FlagCounts stores required-flag counts per kode akun id in redis.
type FlagCounts struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewFlagCounts(client *redis.Client, ttl time.Duration) *FlagCounts {
	return &FlagCounts{redis: client, ttl: ttl}
}

func flagCountKey(kodeAkunID int) string {
	return flagCountKeyPrefix + strconv.Itoa(kodeAkunID)
}

// GetMany returns the cached counts. Ids missing from the cache are absent
// from the result.
func (c *FlagCounts) GetMany(ctx context.Context, kodeAkunIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(kodeAkunIDs))
	if len(kodeAkunIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(kodeAkunIDs))
	for i, id := range kodeAkunIDs {
		keys[i] = flagCountKey(id)
	}

	values, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return counts, fmt.Errorf("mget flag counts: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		counts[kodeAkunIDs[i]] = n
	}
	return counts, nil
}

func (c *FlagCounts) SetMany(ctx context.Context, counts map[int]int) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.redis.Pipeline()
	for id, n := range counts {
		pipe.Set(ctx, flagCountKey(id), n, c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *FlagCounts) Invalidate(ctx context.Context, kodeAkunID int) error {
	err := c.redis.Del(ctx, flagCountKey(kodeAkunID)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
