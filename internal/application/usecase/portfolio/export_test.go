package portfolio

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

func seedRecord(t *testing.T, repo *fakeRepo, ownerID uuid.UUID, title string) *portfolio.Record {
	t.Helper()
	payload := validPayload()
	payload.PortfolioTitle = title
	payload.Skills = []portfolio.Skill{{Name: "Go", Level: portfolio.LevelAdvanced}}
	rec := portfolio.NewRecord(ownerID, uuid.New(), payload, time.Now().UTC())
	assert.NoError(t, repo.Save(context.Background(), rec))
	return rec
}

func TestExport_StripsStorageFields(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()
	rec := seedRecord(t, repo, ownerID, "My Great Portfolio")

	uc := NewExportPortfolioUseCase(repo, logger.NewNop())
	out, err := uc.Execute(context.Background(), ExportPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})

	assert.NoError(t, err)
	assert.Equal(t, "My_Great_Portfolio.json", out.Filename)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(out.JSON, &doc))
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "owner_id")
	assert.NotContains(t, doc, "created_at")
	assert.NotContains(t, doc, "last_modified")
	assert.NotContains(t, doc, "is_public")
	assert.Equal(t, "My Great Portfolio", doc["portfolio_title"])
}

func TestImport_RoundTripCreatesNewRecord(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()
	rec := seedRecord(t, repo, ownerID, "Original")

	exportUC := NewExportPortfolioUseCase(repo, logger.NewNop())
	exported, err := exportUC.Execute(context.Background(), ExportPortfolioInput{PortfolioID: rec.ID, OwnerID: ownerID})
	assert.NoError(t, err)

	createUC := NewCreatePortfolioUseCase(repo, &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	importUC := NewImportPortfolioUseCase(createUC, logger.NewNop())

	out, err := importUC.Execute(context.Background(), ImportPortfolioInput{OwnerID: ownerID, JSON: exported.JSON})

	assert.NoError(t, err)
	assert.Empty(t, out.Errors)
	assert.NotEqual(t, rec.ID, out.PortfolioID, "import always creates a new record")

	imported, err := repo.FindByID(context.Background(), out.PortfolioID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, rec.PortfolioTitle, imported.PortfolioTitle)
	assert.Equal(t, rec.Skills, imported.Skills)
	assert.False(t, imported.IsPublic)
}

func TestImport_RejectsInvalidDocuments(t *testing.T) {
	createUC := NewCreatePortfolioUseCase(newFakeRepo(), &fakeUploader{}, &fakePublisher{}, logger.NewNop())
	uc := NewImportPortfolioUseCase(createUC, logger.NewNop())
	ctx := context.Background()
	ownerID := uuid.New()

	_, err := uc.Execute(ctx, ImportPortfolioInput{OwnerID: ownerID, JSON: []byte("{not json")})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.Execute(ctx, ImportPortfolioInput{OwnerID: ownerID, JSON: []byte(`{"first_name": "Ada"}`)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput, "missing portfolio title")

	_, err = uc.Execute(ctx, ImportPortfolioInput{OwnerID: ownerID, JSON: []byte(`{"portfolio_title": "T"}`)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput, "missing first name")
}

func TestImport_DropsNonHostedPicture(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{}
	createUC := NewCreatePortfolioUseCase(repo, uploader, &fakePublisher{}, logger.NewNop())
	uc := NewImportPortfolioUseCase(createUC, logger.NewNop())

	ownerID := uuid.New()
	doc := []byte(`{
		"portfolio_title": "Pictured",
		"first_name": "Ada",
		"profile_picture": {"kind": "inline", "value": "` + testDataURI() + `"}
	}`)

	out, err := uc.Execute(context.Background(), ImportPortfolioInput{OwnerID: ownerID, JSON: doc})

	assert.NoError(t, err)
	assert.Equal(t, 0, uploader.uploads, "imported inline pictures are never uploaded")

	imported, _ := repo.FindByID(context.Background(), out.PortfolioID, ownerID)
	assert.Equal(t, portfolio.PictureNone, imported.ProfilePicture.Kind)
}

func TestList_MostRecentlyModifiedFirst(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uuid.New()

	older := portfolio.NewRecord(ownerID, uuid.New(), validPayload(), time.Now().UTC().Add(-time.Hour))
	newer := portfolio.NewRecord(ownerID, uuid.New(), validPayload(), time.Now().UTC())
	assert.NoError(t, repo.Save(context.Background(), older))
	assert.NoError(t, repo.Save(context.Background(), newer))

	uc := NewListPortfoliosUseCase(repo, logger.NewNop())
	records, err := uc.Execute(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}
