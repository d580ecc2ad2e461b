package portfolio

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/logger"
)

type GetPortfolioUseCase struct {
	repo   portfolio.Repository
	logger logger.Logger
}

func NewGetPortfolioUseCase(repo portfolio.Repository, log logger.Logger) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{repo: repo, logger: log}
}

type GetPortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*portfolio.Record, error) {
	return uc.repo.FindByID(ctx, input.PortfolioID, input.OwnerID)
}

type ListPortfoliosUseCase struct {
	repo   portfolio.Repository
	logger logger.Logger
}

func NewListPortfoliosUseCase(repo portfolio.Repository, log logger.Logger) *ListPortfoliosUseCase {
	return &ListPortfoliosUseCase{repo: repo, logger: log}
}

// Execute always hits the gateway, never a local cache, so a list view after
// a write shows authoritative state. Records come back most recently modified
// first.
func (uc *ListPortfoliosUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*portfolio.Record, error) {
	records, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].LastModified.After(records[j].LastModified)
	})
	return records, nil
}
