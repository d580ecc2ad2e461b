// Package pdf calls the external HTML-to-PDF converter. The converter takes a
// multipart upload of an index.html and answers with the finished document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/config"
	"github.com/folioforge/folioforge/pkg/logger"
)

type httpPDFAdapter struct {
	serviceURL string
	client     *http.Client
	log        logger.Logger
}

func NewHTTPPDFAdapter(cfg config.Config, log logger.Logger) (service.PDFRenderer, error) {
	if cfg.PDF.ServiceURL == "" {
		return nil, fmt.Errorf("pdf service_url is not configured")
	}

	return &httpPDFAdapter{
		serviceURL: cfg.PDF.ServiceURL,
		client:     &http.Client{Timeout: 60 * time.Second},
		log:        log,
	}, nil
}

func (a *httpPDFAdapter) RenderToPDF(ctx context.Context, html string) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, strings.NewReader(html)); err != nil {
		return nil, fmt.Errorf("failed to write html part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.serviceURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build pdf request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pdf service returned status %d: %s", resp.StatusCode, string(msg))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf response: %w", err)
	}
	return data, nil
}
