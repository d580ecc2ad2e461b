package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/logger"
)

type DeletePortfolioUseCase struct {
	repo   portfolio.Repository
	events EventPublisher
	logger logger.Logger
}

func NewDeletePortfolioUseCase(repo portfolio.Repository, ev EventPublisher, log logger.Logger) *DeletePortfolioUseCase {
	return &DeletePortfolioUseCase{repo: repo, events: ev, logger: log}
}

type DeletePortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

// Execute removes the record and, in the same repository transaction, any
// public copy. The deleted event lets the worker invalidate the render cache
// and sweep up a public copy should the transaction guarantee ever be lost.
func (uc *DeletePortfolioUseCase) Execute(ctx context.Context, input DeletePortfolioInput) error {
	if err := uc.repo.Delete(ctx, input.PortfolioID, input.OwnerID); err != nil {
		return err
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:   event.PortfolioEventDeleted,
			PortfolioID: input.PortfolioID,
			OwnerID:     input.OwnerID,
		}
		if err := uc.events.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'portfolio.deleted' event", err, zap.String("portfolio_id", input.PortfolioID.String()))
		}
	}()

	return nil
}
