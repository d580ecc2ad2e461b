package portfolio

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

func TestPublish_ReturnsShareURL(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()
	rec := seedRecord(t, repo, ownerID, "Shareable")

	uc := NewPublishPortfolioUseCase(repo, &fakePublisher{}, logger.NewNop(), "https://folioforge.example.com")

	out, err := uc.Execute(context.Background(), PublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("https://folioforge.example.com/p/%s", rec.ID), out.ShareURL)

	stored, _ := repo.FindByID(context.Background(), rec.ID, ownerID)
	assert.True(t, stored.IsPublic)
}

func TestPublish_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()
	rec := seedRecord(t, repo, ownerID, "Twice")

	uc := NewPublishPortfolioUseCase(repo, &fakePublisher{}, logger.NewNop(), "https://folioforge.example.com")

	first, err := uc.Execute(context.Background(), PublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})
	assert.NoError(t, err)
	second, err := uc.Execute(context.Background(), PublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})
	assert.NoError(t, err)
	assert.Equal(t, first.ShareURL, second.ShareURL)
}

func TestPublish_UnknownRecord(t *testing.T) {
	uc := NewPublishPortfolioUseCase(newFakeRepo(), &fakePublisher{}, logger.NewNop(), "https://folioforge.example.com")

	_, err := uc.Execute(context.Background(), PublishPortfolioInput{PortfolioID: uuid.New(), OwnerID: uuid.New()})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUnpublish(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()
	rec := seedRecord(t, repo, ownerID, "Retractable")

	publishUC := NewPublishPortfolioUseCase(repo, &fakePublisher{}, logger.NewNop(), "https://folioforge.example.com")
	_, err := publishUC.Execute(context.Background(), PublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})
	assert.NoError(t, err)

	uc := NewUnpublishPortfolioUseCase(repo, &fakePublisher{}, logger.NewNop())

	assert.NoError(t, uc.Execute(context.Background(), UnpublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID}))

	stored, _ := repo.FindByID(context.Background(), rec.ID, ownerID)
	assert.False(t, stored.IsPublic)

	// Unpublishing an already-private record is a no-op, not an error.
	assert.NoError(t, uc.Execute(context.Background(), UnpublishPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID}))
}
