package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

func seedPublic(pub *fakePublicRepo, title string) *portfolio.Record {
	payload := validPayload()
	payload.PortfolioTitle = title
	rec := portfolio.NewRecord(uuid.New(), uuid.New(), payload, time.Now().UTC())
	rec.IsPublic = true
	pub.records[rec.ID] = rec
	return rec
}

func TestViewPublic_CacheMissRendersAndWarms(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	rec := seedPublic(pub, "Cached Portfolio")

	uc := NewViewPublicPortfolioUseCase(pub, cache, logger.NewNop())

	html, err := uc.Execute(context.Background(), rec.ID)

	assert.NoError(t, err)
	assert.Contains(t, html, "Cached Portfolio")
	assert.Equal(t, html, cache.entries[rec.ID], "miss warms the cache")
}

func TestViewPublic_CacheHitSkipsRepository(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	id := uuid.New()
	cache.entries[id] = "<div>warm</div>"

	uc := NewViewPublicPortfolioUseCase(pub, cache, logger.NewNop())

	html, err := uc.Execute(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, "<div>warm</div>", html)
}

func TestViewPublic_CacheFailuresDegrade(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	rec := seedPublic(pub, "Resilient")

	uc := NewViewPublicPortfolioUseCase(pub, cache, logger.NewNop())

	html, err := uc.Execute(context.Background(), rec.ID)

	assert.NoError(t, err, "cache failure must not fail the share view")
	assert.Contains(t, html, "Resilient")
}

func TestViewPublic_UnknownRecord(t *testing.T) {
	uc := NewViewPublicPortfolioUseCase(newFakePublicRepo(), newFakeCache(), logger.NewNop())

	_, err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestProcessEvent_PublishedWarmsCache(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	rec := seedPublic(pub, "Announced")

	uc := NewProcessPortfolioEventUseCase(pub, cache, logger.NewNop())

	err := uc.Execute(context.Background(), event.PortfolioEventPayload{
		EventType:   event.PortfolioEventPublished,
		PortfolioID: rec.ID,
		OwnerID:     rec.OwnerID,
		IsPublic:    true,
	})

	assert.NoError(t, err)
	assert.Contains(t, cache.entries[rec.ID], "Announced")
}

func TestProcessEvent_UnpublishedInvalidatesAndRemoves(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	rec := seedPublic(pub, "Retracted")
	cache.entries[rec.ID] = "<div>stale</div>"

	uc := NewProcessPortfolioEventUseCase(pub, cache, logger.NewNop())

	err := uc.Execute(context.Background(), event.PortfolioEventPayload{
		EventType:   event.PortfolioEventUnpublished,
		PortfolioID: rec.ID,
		OwnerID:     rec.OwnerID,
	})

	assert.NoError(t, err)
	assert.NotContains(t, cache.entries, rec.ID)
	assert.Contains(t, pub.removed, rec.ID, "orphaned public copy is repaired")
}

func TestProcessEvent_PrivateUpdateInvalidates(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	id := uuid.New()
	cache.entries[id] = "<div>stale</div>"

	uc := NewProcessPortfolioEventUseCase(pub, cache, logger.NewNop())

	err := uc.Execute(context.Background(), event.PortfolioEventPayload{
		EventType:   event.PortfolioEventUpdated,
		PortfolioID: id,
		IsPublic:    false,
	})

	assert.NoError(t, err)
	assert.NotContains(t, cache.entries, id)
}

func TestProcessEvent_WarmCacheHandlesVanishedRecord(t *testing.T) {
	pub := newFakePublicRepo()
	cache := newFakeCache()
	id := uuid.New()
	cache.entries[id] = "<div>stale</div>"

	uc := NewProcessPortfolioEventUseCase(pub, cache, logger.NewNop())

	err := uc.Execute(context.Background(), event.PortfolioEventPayload{
		EventType:   event.PortfolioEventPublished,
		PortfolioID: id,
		IsPublic:    true,
	})

	assert.NoError(t, err, "record unpublished between event and processing")
	assert.NotContains(t, cache.entries, id)
}
