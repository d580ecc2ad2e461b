package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/internal/render"
	"github.com/folioforge/folioforge/pkg/logger"
)

type GetPublicPortfolioUseCase struct {
	publicRepo portfolio.PublicRepository
	logger     logger.Logger
}

func NewGetPublicPortfolioUseCase(pub portfolio.PublicRepository, log logger.Logger) *GetPublicPortfolioUseCase {
	return &GetPublicPortfolioUseCase{publicRepo: pub, logger: log}
}

// Execute is the unauthenticated read behind a share link.
func (uc *GetPublicPortfolioUseCase) Execute(ctx context.Context, id uuid.UUID) (*portfolio.Record, error) {
	return uc.publicRepo.FindByID(ctx, id)
}

type ViewPublicPortfolioUseCase struct {
	publicRepo portfolio.PublicRepository
	cache      service.RenderCache
	logger     logger.Logger
}

func NewViewPublicPortfolioUseCase(pub portfolio.PublicRepository, cache service.RenderCache, log logger.Logger) *ViewPublicPortfolioUseCase {
	return &ViewPublicPortfolioUseCase{publicRepo: pub, cache: cache, logger: log}
}

// Execute returns the rendered share-view HTML, from cache when warm. Cache
// failures degrade to a render, never to an error.
func (uc *ViewPublicPortfolioUseCase) Execute(ctx context.Context, id uuid.UUID) (string, error) {
	if html, ok, err := uc.cache.Get(ctx, id); err == nil && ok {
		return html, nil
	} else if err != nil {
		uc.logger.Warn("Render cache read failed", zap.String("portfolio_id", id.String()), zap.Error(err))
	}

	rec, err := uc.publicRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	html := render.Render(rec)

	if err := uc.cache.Set(ctx, id, html); err != nil {
		uc.logger.Warn("Render cache write failed", zap.String("portfolio_id", id.String()), zap.Error(err))
	}

	return html, nil
}
