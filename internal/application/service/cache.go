package service

import (
	"context"

	"github.com/google/uuid"
)

// RenderCache keeps rendered share-view HTML close to the public read path.
// A miss is not an error; Get returns ok=false.
type RenderCache interface {
	Get(ctx context.Context, id uuid.UUID) (html string, ok bool, err error)
	Set(ctx context.Context, id uuid.UUID, html string) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
