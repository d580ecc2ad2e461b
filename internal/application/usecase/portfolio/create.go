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

type CreatePortfolioUseCase struct {
	repo     portfolio.Repository
	uploader service.Uploader
	events   EventPublisher
	logger   logger.Logger
	now      func() time.Time
}

func NewCreatePortfolioUseCase(repo portfolio.Repository, up service.Uploader, ev EventPublisher, log logger.Logger) *CreatePortfolioUseCase {
	return &CreatePortfolioUseCase{
		repo:     repo,
		uploader: up,
		events:   ev,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type CreatePortfolioInput struct {
	OwnerID uuid.UUID
	Payload portfolio.FormPayload
}

type CreatePortfolioOutput struct {
	PortfolioID uuid.UUID
	Errors      []portfolio.FieldError
}

// Execute validates the collected payload, uploads a pending profile picture,
// stamps the record and persists it. Validation strictly precedes persistence;
// field errors come back as data with no record created.
func (uc *CreatePortfolioUseCase) Execute(ctx context.Context, input CreatePortfolioInput) (*CreatePortfolioOutput, error) {
	if errs := portfolio.Validate(input.Payload); len(errs) > 0 {
		return &CreatePortfolioOutput{Errors: errs}, nil
	}

	payload, err := resolvePicture(ctx, uc.uploader, input.OwnerID, input.Payload)
	if err != nil {
		return nil, err
	}

	rec := portfolio.NewRecord(input.OwnerID, uuid.New(), payload, uc.now())

	if err := uc.repo.Save(ctx, rec); err != nil {
		return nil, apperror.NewInternal("failed to save portfolio", err)
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:   event.PortfolioEventCreated,
			PortfolioID: rec.ID,
			OwnerID:     rec.OwnerID,
		}
		if err := uc.events.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'portfolio.created' event", err, zap.String("portfolio_id", rec.ID.String()))
		}
	}()

	return &CreatePortfolioOutput{PortfolioID: rec.ID}, nil
}
