package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/logger"
)

type PublishPortfolioUseCase struct {
	repo         portfolio.Repository
	events       EventPublisher
	logger       logger.Logger
	shareBaseURL string
}

func NewPublishPortfolioUseCase(repo portfolio.Repository, ev EventPublisher, log logger.Logger, shareBaseURL string) *PublishPortfolioUseCase {
	return &PublishPortfolioUseCase{repo: repo, events: ev, logger: log, shareBaseURL: shareBaseURL}
}

type PublishPortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

type PublishPortfolioOutput struct {
	ShareURL string
}

// Execute flips the record public and upserts its denormalized copy in one
// repository transaction. Publishing an already-public record is a no-op that
// still returns the same share URL.
func (uc *PublishPortfolioUseCase) Execute(ctx context.Context, input PublishPortfolioInput) (*PublishPortfolioOutput, error) {
	rec, err := uc.repo.Publish(ctx, input.PortfolioID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:   event.PortfolioEventPublished,
			PortfolioID: rec.ID,
			OwnerID:     rec.OwnerID,
			IsPublic:    true,
		}
		if err := uc.events.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'portfolio.published' event", err, zap.String("portfolio_id", rec.ID.String()))
		}
	}()

	return &PublishPortfolioOutput{
		ShareURL: fmt.Sprintf("%s/p/%s", uc.shareBaseURL, rec.ID.String()),
	}, nil
}

type UnpublishPortfolioUseCase struct {
	repo   portfolio.Repository
	events EventPublisher
	logger logger.Logger
}

func NewUnpublishPortfolioUseCase(repo portfolio.Repository, ev EventPublisher, log logger.Logger) *UnpublishPortfolioUseCase {
	return &UnpublishPortfolioUseCase{repo: repo, events: ev, logger: log}
}

type UnpublishPortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

// Execute removes the public copy and clears the flag; unpublishing an
// already-private record is a no-op, not an error.
func (uc *UnpublishPortfolioUseCase) Execute(ctx context.Context, input UnpublishPortfolioInput) error {
	if err := uc.repo.Unpublish(ctx, input.PortfolioID, input.OwnerID); err != nil {
		return err
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:   event.PortfolioEventUnpublished,
			PortfolioID: input.PortfolioID,
			OwnerID:     input.OwnerID,
		}
		if err := uc.events.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'portfolio.unpublished' event", err, zap.String("portfolio_id", input.PortfolioID.String()))
		}
	}()

	return nil
}
