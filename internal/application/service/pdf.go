package service

import "context"

// PDFRenderer converts a rendered HTML document into PDF bytes. The
// implementation delegates to an external HTML-to-PDF service.
type PDFRenderer interface {
	RenderToPDF(ctx context.Context, html string) ([]byte, error)
}
