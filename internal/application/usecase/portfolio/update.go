package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type UpdatePortfolioUseCase struct {
	repo     portfolio.Repository
	uploader service.Uploader
	events   EventPublisher
	logger   logger.Logger
	now      func() time.Time
}

func NewUpdatePortfolioUseCase(repo portfolio.Repository, up service.Uploader, ev EventPublisher, log logger.Logger) *UpdatePortfolioUseCase {
	return &UpdatePortfolioUseCase{
		repo:     repo,
		uploader: up,
		events:   ev,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type UpdatePortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
	Payload     portfolio.FormPayload
}

type UpdatePortfolioOutput struct {
	Record *portfolio.Record
	Errors []portfolio.FieldError
}

// Execute overlays the collected payload onto the stored record: identifier
// and createdAt survive, lastModified is refreshed, collections are replaced
// wholesale. Last write wins, there is no conflict detection on update.
func (uc *UpdatePortfolioUseCase) Execute(ctx context.Context, input UpdatePortfolioInput) (*UpdatePortfolioOutput, error) {
	if errs := portfolio.Validate(input.Payload); len(errs) > 0 {
		return &UpdatePortfolioOutput{Errors: errs}, nil
	}

	existing, err := uc.repo.FindByID(ctx, input.PortfolioID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	payload, err := resolvePicture(ctx, uc.uploader, input.OwnerID, input.Payload)
	if err != nil {
		return nil, err
	}

	rec := portfolio.Updated(existing, payload, uc.now())

	if err := uc.repo.Update(ctx, rec); err != nil {
		return nil, apperror.NewInternal("failed to update portfolio", err)
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:   event.PortfolioEventUpdated,
			PortfolioID: rec.ID,
			OwnerID:     rec.OwnerID,
			IsPublic:    rec.IsPublic,
		}
		if err := uc.events.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'portfolio.updated' event", err, zap.String("portfolio_id", rec.ID.String()))
		}
	}()

	return &UpdatePortfolioOutput{Record: rec}, nil
}
