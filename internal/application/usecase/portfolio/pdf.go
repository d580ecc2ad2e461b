package portfolio

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/internal/render"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type ExportPDFUseCase struct {
	repo   portfolio.Repository
	pdf    service.PDFRenderer
	logger logger.Logger
}

func NewExportPDFUseCase(repo portfolio.Repository, pdf service.PDFRenderer, log logger.Logger) *ExportPDFUseCase {
	return &ExportPDFUseCase{repo: repo, pdf: pdf, logger: log}
}

type ExportPDFInput struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
}

type ExportPDFOutput struct {
	Filename string
	PDF      []byte
}

// Execute renders the record's preview HTML and hands it to the external
// HTML-to-PDF service. A renderer failure aborts the action and leaves
// everything else untouched.
func (uc *ExportPDFUseCase) Execute(ctx context.Context, input ExportPDFInput) (*ExportPDFOutput, error) {
	rec, err := uc.repo.FindByID(ctx, input.PortfolioID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	doc := fmt.Sprintf(
		"<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title></head><body>%s</body></html>",
		html.EscapeString(rec.PortfolioTitle), render.Render(rec),
	)

	data, err := uc.pdf.RenderToPDF(ctx, doc)
	if err != nil {
		return nil, apperror.NewUnavailable("PDF renderer", err)
	}

	name := strings.ReplaceAll(strings.TrimSpace(rec.PortfolioTitle), " ", "_")
	if name == "" {
		name = "portfolio"
	}

	return &ExportPDFOutput{Filename: name + ".pdf", PDF: data}, nil
}
