package portfolio

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

func validPayload() portfolio.FormPayload {
	return portfolio.FormPayload{
		PortfolioTitle: "My Portfolio",
		FirstName:      "Ada",
		ProfilePicture: portfolio.ProfilePicture{Kind: portfolio.PictureNone},
	}
}

func testDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))
}

func TestCreate_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{}
	uc := NewCreatePortfolioUseCase(repo, uploader, &fakePublisher{}, logger.NewNop())

	fixed := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	ownerID := uuid.New()
	out, err := uc.Execute(context.Background(), CreatePortfolioInput{
		OwnerID: ownerID,
		Payload: validPayload(),
	})

	assert.NoError(t, err)
	assert.Empty(t, out.Errors)
	assert.NotEqual(t, uuid.Nil, out.PortfolioID)

	saved, err := repo.FindByID(context.Background(), out.PortfolioID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, fixed, saved.CreatedAt)
	assert.Equal(t, fixed, saved.LastModified)
	assert.False(t, saved.IsPublic)
	assert.Equal(t, 0, uploader.uploads, "no upload without an inline picture")
}

func TestCreate_ValidationPrecedesPersistence(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreatePortfolioUseCase(repo, &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	payload := validPayload()
	payload.PortfolioTitle = ""

	out, err := uc.Execute(context.Background(), CreatePortfolioInput{
		OwnerID: uuid.New(),
		Payload: payload,
	})

	assert.NoError(t, err, "field errors are data, not errors")
	assert.Len(t, out.Errors, 1)
	assert.Equal(t, "portfolio_title", out.Errors[0].Field)
	assert.Empty(t, repo.records, "nothing persisted on validation failure")
}

func TestCreate_InlinePictureUploadedBeforeSave(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{url: "https://media.example.com/abc.png"}
	uc := NewCreatePortfolioUseCase(repo, uploader, &fakePublisher{}, logger.NewNop())

	payload := validPayload()
	payload.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureInline, Value: testDataURI()}

	ownerID := uuid.New()
	out, err := uc.Execute(context.Background(), CreatePortfolioInput{OwnerID: ownerID, Payload: payload})

	assert.NoError(t, err)
	assert.Equal(t, 1, uploader.uploads)

	saved, _ := repo.FindByID(context.Background(), out.PortfolioID, ownerID)
	assert.Equal(t, portfolio.PictureHosted, saved.ProfilePicture.Kind)
	assert.Equal(t, "https://media.example.com/abc.png", saved.ProfilePicture.Value)
}

func TestCreate_UploadFailureAbortsSave(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{err: errors.New("host down")}
	uc := NewCreatePortfolioUseCase(repo, uploader, &fakePublisher{}, logger.NewNop())

	payload := validPayload()
	payload.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureInline, Value: testDataURI()}

	_, err := uc.Execute(context.Background(), CreatePortfolioInput{OwnerID: uuid.New(), Payload: payload})

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
	assert.Empty(t, repo.records, "no record persisted with a local-only image")
}

func TestCreate_BadDataURIRejected(t *testing.T) {
	uc := NewCreatePortfolioUseCase(newFakeRepo(), &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	payload := validPayload()
	payload.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureInline, Value: "data:text/plain;base64,aGk="}

	_, err := uc.Execute(context.Background(), CreatePortfolioInput{OwnerID: uuid.New(), Payload: payload})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdate_OverlaysAndPreservesMetadata(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreatePortfolioUseCase(repo, &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	createUC.now = func() time.Time { return created }

	ownerID := uuid.New()
	out, err := createUC.Execute(context.Background(), CreatePortfolioInput{OwnerID: ownerID, Payload: validPayload()})
	assert.NoError(t, err)

	updateUC := NewUpdatePortfolioUseCase(repo, &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	modified := created.Add(2 * time.Hour)
	updateUC.now = func() time.Time { return modified }

	payload := validPayload()
	payload.PortfolioTitle = "Renamed"

	updOut, err := updateUC.Execute(context.Background(), UpdatePortfolioInput{
		PortfolioID: out.PortfolioID,
		OwnerID:     ownerID,
		Payload:     payload,
	})

	assert.NoError(t, err)
	assert.Empty(t, updOut.Errors)
	assert.Equal(t, "Renamed", updOut.Record.PortfolioTitle)
	assert.Equal(t, created, updOut.Record.CreatedAt)
	assert.Equal(t, modified, updOut.Record.LastModified)
}

func TestUpdate_UnknownRecord(t *testing.T) {
	uc := NewUpdatePortfolioUseCase(newFakeRepo(), &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdatePortfolioInput{
		PortfolioID: uuid.New(),
		OwnerID:     uuid.New(),
		Payload:     validPayload(),
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreatePortfolioUseCase(repo, &fakeUploader{}, &fakePublisher{}, logger.NewNop())

	ownerID := uuid.New()
	out, err := createUC.Execute(context.Background(), CreatePortfolioInput{OwnerID: ownerID, Payload: validPayload()})
	assert.NoError(t, err)

	deleteUC := NewDeletePortfolioUseCase(repo, &fakePublisher{}, logger.NewNop())

	assert.NoError(t, deleteUC.Execute(context.Background(), DeletePortfolioInput{
		PortfolioID: out.PortfolioID,
		OwnerID:     ownerID,
	}))

	err = deleteUC.Execute(context.Background(), DeletePortfolioInput{
		PortfolioID: out.PortfolioID,
		OwnerID:     ownerID,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound, "deleting twice reports not found")
}
