package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studio-calendar/internal/domain/reservation"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const occupancyKeyPrefix = "studio-calendar:occupancy:"

// OccupancyCache keeps occupancy summaries in Redis for a fixed TTL.
type OccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewOccupancyCache(client *redis.Client, ttl time.Duration) *OccupancyCache {
	return &OccupancyCache{client: client, ttl: ttl}
}

func occupancyKey(studioID uuid.UUID) string {
	return occupancyKeyPrefix + studioID.String()
}

func (c *OccupancyCache) Get(ctx context.Context, studioID uuid.UUID) (*queries.OccupancySummaryView, error) {
	val, err := c.client.Get(ctx, occupancyKey(studioID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "read occupancy cache")
	}
	var summary queries.OccupancySummaryView
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, errs.Wrap(err, "decode occupancy cache entry")
	}
	return &summary, nil
}

func (c *OccupancyCache) Set(ctx context.Context, summary *queries.OccupancySummaryView) error {
	if c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return errs.Wrap(err, "encode occupancy summary")
	}
	if err := c.client.Set(ctx, occupancyKey(summary.StudioID), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write occupancy cache")
	}
	return nil
}

// Invalidate drops the cached summary so the next read recomputes it.
func (c *OccupancyCache) Invalidate(ctx context.Context, studioID uuid.UUID) error {
	if err := c.client.Del(ctx, occupancyKey(studioID)).Err(); err != nil {
		return errs.Wrap(err, "invalidate occupancy cache")
	}
	return nil
}

// HandleEvent drops the studio summary once an approval adds a block.
func (c *OccupancyCache) HandleEvent(ctx context.Context, ev reservation.Event) error {
	if ev.Type != reservation.EventApproved {
		return nil
	}
	return c.Invalidate(ctx, ev.StudioID)
}
