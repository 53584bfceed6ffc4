// Package cache holds the Redis hot cache for latest metric values. The
// dashboard and the admin overview read "current value" far more often
// than new samples arrive, so the latest reading per (user, type) is kept
// in Redis beside Postgres. The cache is strictly an accelerator: a miss
// falls through to the repository and correctness never depends on it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vitapulse/health-tracker/internal/domain"
)

// latestTTL bounds staleness when invalidation is missed (e.g. a reset
// racing a record).
const latestTTL = 24 * time.Hour

var ErrCacheMiss = redis.Nil

// Entry is one cached reading. The observation timestamp travels with the
// value so writers can tell whether a new sample actually supersedes the
// cached one; samples may arrive backdated.
type Entry struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// LatestCache caches the most recent reading per user and metric type.
type LatestCache interface {
	Get(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*Entry, error)
	Set(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, entry Entry) error
	// InvalidateUser drops every cached reading for the user (bulk reset).
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

type redisLatestCache struct {
	client *redis.Client
}

// NewLatestCache connects to Redis using a redis:// URL. Returns nil when
// the URL is empty so callers can treat the cache as optional.
func NewLatestCache(redisURL string) (LatestCache, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return &redisLatestCache{client: redis.NewClient(opts)}, nil
}

func latestKey(userID uuid.UUID, metricType domain.MetricType) string {
	return fmt.Sprintf("latest:%s:%s", userID, metricType)
}

func (c *redisLatestCache) Get(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*Entry, error) {
	data, err := c.client.Get(ctx, latestKey(userID, metricType)).Bytes()
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *redisLatestCache) Set(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, latestKey(userID, metricType), data, latestTTL).Err()
}

func (c *redisLatestCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("latest:%s:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
