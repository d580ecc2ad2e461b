package portfolio

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/internal/render"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

// ProcessPortfolioEventUseCase runs in the worker. It keeps the render cache
// warm for public records and repairs the one inconsistency a crash can leave
// behind: a public copy that outlived its private record.
type ProcessPortfolioEventUseCase struct {
	publicRepo portfolio.PublicRepository
	cache      service.RenderCache
	logger     logger.Logger
}

func NewProcessPortfolioEventUseCase(pub portfolio.PublicRepository, cache service.RenderCache, log logger.Logger) *ProcessPortfolioEventUseCase {
	return &ProcessPortfolioEventUseCase{publicRepo: pub, cache: cache, logger: log}
}

func (uc *ProcessPortfolioEventUseCase) Execute(ctx context.Context, payload event.PortfolioEventPayload) error {
	l := uc.logger.With(
		zap.String("event_type", string(payload.EventType)),
		zap.String("portfolio_id", payload.PortfolioID.String()),
	)

	switch payload.EventType {
	case event.PortfolioEventPublished:
		return uc.warmCache(ctx, payload, l)

	case event.PortfolioEventUpdated:
		if !payload.IsPublic {
			return uc.cache.Invalidate(ctx, payload.PortfolioID)
		}
		return uc.warmCache(ctx, payload, l)

	case event.PortfolioEventUnpublished, event.PortfolioEventDeleted:
		if err := uc.cache.Invalidate(ctx, payload.PortfolioID); err != nil {
			l.Warn("Failed to invalidate render cache", zap.Error(err))
		}
		// The delete transaction already covers the public copy; Remove here
		// is the repair path for an orphan and is a no-op otherwise.
		if err := uc.publicRepo.Remove(ctx, payload.PortfolioID); err != nil {
			return err
		}
		return nil

	case event.PortfolioEventCreated:
		return nil
	}

	l.Warn("Unknown portfolio event type, skipping")
	return nil
}

func (uc *ProcessPortfolioEventUseCase) warmCache(ctx context.Context, payload event.PortfolioEventPayload, l logger.Logger) error {
	rec, err := uc.publicRepo.FindByID(ctx, payload.PortfolioID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			// Unpublished or deleted between the event and now.
			return uc.cache.Invalidate(ctx, payload.PortfolioID)
		}
		return err
	}

	if err := uc.cache.Set(ctx, payload.PortfolioID, render.Render(rec)); err != nil {
		l.Warn("Failed to warm render cache", zap.Error(err))
	}
	return nil
}
