package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/repo"
)

const preferenceKeyPrefix = "sidequest:prefs:"

// PreferenceCache implements repo.PreferenceRepo on top of another
// PreferenceRepo. Missing preferences are never cached, so a user who just
// finished onboarding is never told to onboard again.
type PreferenceCache struct {
	next   repo.PreferenceRepo
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

var _ repo.PreferenceRepo = (*PreferenceCache)(nil)

// NewPreferenceCache wraps next with a cache whose entries live for ttl.
func NewPreferenceCache(next repo.PreferenceRepo, client *redis.Client, ttl time.Duration, log *slog.Logger) *PreferenceCache {
	return &PreferenceCache{next: next, client: client, ttl: ttl, log: log}
}

func preferenceKey(userID uuid.UUID) string {
	return preferenceKeyPrefix + userID.String()
}

// Get returns the cached preferences, loading and caching them on a miss.
func (c *PreferenceCache) Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	key := preferenceKey(userID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Preferences
		if err := json.Unmarshal(raw, &p); err == nil {
			return p, nil
		}
		c.log.WarnContext(ctx, "preference cache: dropping undecodable entry", "key", key)
		_ = c.client.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "preference cache: get failed", "key", key, "error", err)
	}

	p, err := c.next.Get(ctx, userID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("cache.PreferenceCache.Get: %w", err)
	}
	c.store(ctx, p)
	return p, nil
}

// Upsert writes through to the wrapped repository, then refreshes the entry.
func (c *PreferenceCache) Upsert(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	saved, err := c.next.Upsert(ctx, prefs)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("cache.PreferenceCache.Upsert: %w", err)
	}
	c.store(ctx, saved)
	return saved, nil
}

func (c *PreferenceCache) store(ctx context.Context, p domain.Preferences) {
	key := preferenceKey(p.UserID)
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.WarnContext(ctx, "preference cache: encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "preference cache: set failed", "key", key, "error", err)
	}
}
