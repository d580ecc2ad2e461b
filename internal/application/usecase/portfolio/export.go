package portfolio

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type ExportPortfolioUseCase struct {
	repo   portfolio.Repository
	logger logger.Logger
}

func NewExportPortfolioUseCase(repo portfolio.Repository, log logger.Logger) *ExportPortfolioUseCase {
	return &ExportPortfolioUseCase{repo: repo, logger: log}
}

type ExportPortfolioInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

type ExportPortfolioOutput struct {
	Filename string
	JSON     []byte
}

// Execute serializes a record as plain JSON with persistence-only fields
// (identifier, timestamps, visibility) stripped.
func (uc *ExportPortfolioUseCase) Execute(ctx context.Context, input ExportPortfolioInput) (*ExportPortfolioOutput, error) {
	rec, err := uc.repo.FindByID(ctx, input.PortfolioID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(rec.Payload(), "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize portfolio", err)
	}

	name := strings.ReplaceAll(strings.TrimSpace(rec.PortfolioTitle), " ", "_")
	if name == "" {
		name = "portfolio"
	}

	return &ExportPortfolioOutput{Filename: name + ".json", JSON: data}, nil
}

type ImportPortfolioUseCase struct {
	create *CreatePortfolioUseCase
	logger logger.Logger
}

func NewImportPortfolioUseCase(create *CreatePortfolioUseCase, log logger.Logger) *ImportPortfolioUseCase {
	return &ImportPortfolioUseCase{create: create, logger: log}
}

type ImportPortfolioInput struct {
	OwnerID uuid.UUID
	JSON    []byte
}

// Execute accepts an exported document and creates a brand-new record from
// it: any identifier or timestamps present in the file are discarded and
// reassigned. The file must carry at least a portfolio title and a first
// name; anything else is rejected before any write happens.
func (uc *ImportPortfolioUseCase) Execute(ctx context.Context, input ImportPortfolioInput) (*CreatePortfolioOutput, error) {
	var payload portfolio.FormPayload
	if err := json.Unmarshal(input.JSON, &payload); err != nil {
		return nil, apperror.NewInvalidInput("file is not valid JSON", err)
	}

	if !portfolio.IsNonEmpty(payload.PortfolioTitle) || !portfolio.IsNonEmpty(payload.FirstName) {
		return nil, apperror.NewInvalidInput("file does not appear to be a valid portfolio", nil)
	}

	// An inline picture in an import file would force an upload of untrusted
	// bytes; keep hosted URLs, drop anything else.
	if payload.ProfilePicture.Kind != portfolio.PictureHosted {
		payload.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureNone}
	}

	return uc.create.Execute(ctx, CreatePortfolioInput{OwnerID: input.OwnerID, Payload: payload})
}
