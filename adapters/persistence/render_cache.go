package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/pkg/apperror"
)

// The worker re-warms entries on publish and update, so a short TTL only
// bounds how long an orphaned entry can linger.
const renderCacheTTL = time.Hour

type redisRenderCache struct {
	rdb *redis.Client
}

func NewRedisRenderCache(rdb *redis.Client) service.RenderCache {
	return &redisRenderCache{rdb: rdb}
}

func renderKey(id uuid.UUID) string {
	return "public:html:" + id.String()
}

func (c *redisRenderCache) Get(ctx context.Context, id uuid.UUID) (string, bool, error) {
	html, err := c.rdb.Get(ctx, renderKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, apperror.NewInternal("failed to read render cache", err)
	}
	return html, true, nil
}

func (c *redisRenderCache) Set(ctx context.Context, id uuid.UUID, html string) error {
	if err := c.rdb.Set(ctx, renderKey(id), html, renderCacheTTL).Err(); err != nil {
		return apperror.NewInternal("failed to write render cache", err)
	}
	return nil
}

func (c *redisRenderCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, renderKey(id)).Err(); err != nil {
		return apperror.NewInternal("failed to invalidate render cache", err)
	}
	return nil
}
