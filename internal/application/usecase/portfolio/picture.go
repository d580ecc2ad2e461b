package portfolio

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
)

// resolvePicture turns an inline (data URI) profile picture into a hosted one
// by uploading it to the media host. Hosted and absent pictures pass through
// untouched. An upload failure aborts the save: a record must never be
// persisted with a local-only image reference.
func resolvePicture(ctx context.Context, uploader service.Uploader, ownerID uuid.UUID, p portfolio.FormPayload) (portfolio.FormPayload, error) {
	if p.ProfilePicture.Kind != portfolio.PictureInline {
		return p, nil
	}

	data, err := decodeDataURI(p.ProfilePicture.Value)
	if err != nil {
		return p, apperror.NewInvalidInput("profile picture is not a valid data URI", err)
	}

	folder := fmt.Sprintf("users/%s/portraits", ownerID.String())
	publicID := uuid.New().String()

	url, err := uploader.Upload(ctx, bytes.NewReader(data), folder, publicID)
	if err != nil {
		return p, apperror.NewUnavailable("media host", err)
	}

	p.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureHosted, Value: url}
	return p, nil
}

func decodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:image/") {
		return nil, fmt.Errorf("unsupported data URI prefix")
	}
	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}
	return base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
}
