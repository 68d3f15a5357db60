package service

import (
	"context"
	"fmt"

	"spm-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// RequiredFlagCounter resolves how many flags each kode akun requires,
// reading through the cache when one is configured.
type RequiredFlagCounter struct {
	flagRepo FlagRepository
	cache    FlagCountCache
	logger   *logrus.Logger
}

func NewRequiredFlagCounter(flagRepo FlagRepository, cache FlagCountCache, logger *logrus.Logger) *RequiredFlagCounter {
	return &RequiredFlagCounter{
		flagRepo: flagRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Counts returns the required-flag count of every given kode akun id.
func (c *RequiredFlagCounter) Counts(ctx context.Context, kodeAkunIDs []int) (map[int]int, error) {
	ids := uniqueIDs(kodeAkunIDs)
	counts := make(map[int]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	missing := ids
	if c.cache != nil {
		cached, err := c.cache.GetMany(ctx, ids)
		if err != nil {
			c.logger.WithError(err).Warn("flag count cache read failed")
		}
		missing = missing[:0:0]
		for _, id := range ids {
			if n, ok := cached[id]; ok {
				counts[id] = n
			} else {
				missing = append(missing, id)
			}
		}
	}

	if len(missing) == 0 {
		return counts, nil
	}

	fresh, err := c.flagRepo.CountByKodeAkun(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("count required flags: %w", err)
	}
	for id, n := range fresh {
		counts[id] = n
	}

	if c.cache != nil {
		if err := c.cache.SetMany(ctx, fresh); err != nil {
			c.logger.WithError(err).Warn("flag count cache write failed")
		}
	}

	return counts, nil
}

// Invalidate drops the cached count of one kode akun.
func (c *RequiredFlagCounter) Invalidate(ctx context.Context, kodeAkunID int) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx, kodeAkunID); err != nil {
		c.logger.WithError(err).WithField("kode_akun_id", kodeAkunID).Warn("flag count cache invalidation failed")
	}
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func kodeAkunIDsOf(details []models.RincianDetail) []int {
	ids := make([]int, len(details))
	for i, d := range details {
		ids[i] = d.KodeAkunID
	}
	return ids
}
