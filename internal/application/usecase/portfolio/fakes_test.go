package portfolio

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
)

type fakeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*portfolio.Record

	saveErr   error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]*portfolio.Record)}
}

func (f *fakeRepo) Save(_ context.Context, r *portfolio.Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.records[r.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, r *portfolio.Record) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[r.ID]; !ok {
		return apperror.NewNotFound("portfolio", r.ID.String())
	}
	cp := *r
	f.records[r.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok || r.OwnerID != ownerID {
		return apperror.NewNotFound("portfolio", id.String())
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*portfolio.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok || r.OwnerID != ownerID {
		return nil, apperror.NewNotFound("portfolio", id.String())
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*portfolio.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*portfolio.Record
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) Publish(_ context.Context, id, ownerID uuid.UUID) (*portfolio.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok || r.OwnerID != ownerID {
		return nil, apperror.NewNotFound("portfolio", id.String())
	}
	r.IsPublic = true
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) Unpublish(_ context.Context, id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok || r.OwnerID != ownerID {
		return apperror.NewNotFound("portfolio", id.String())
	}
	r.IsPublic = false
	return nil
}

type fakePublicRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*portfolio.Record
	removed []uuid.UUID
}

func newFakePublicRepo() *fakePublicRepo {
	return &fakePublicRepo{records: make(map[uuid.UUID]*portfolio.Record)}
}

func (f *fakePublicRepo) FindByID(_ context.Context, id uuid.UUID) (*portfolio.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return nil, apperror.NewNotFound("portfolio", id.String())
	}
	cp := *r
	return &cp, nil
}

func (f *fakePublicRepo) ListRecent(_ context.Context, limit int) ([]*portfolio.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*portfolio.Record
	for _, r := range f.records {
		if len(out) == limit {
			break
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePublicRepo) Remove(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	f.removed = append(f.removed, id)
	return nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads int
	err     error
	url     string
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, _ string, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	if f.url != "" {
		return f.url, nil
	}
	return "https://media.example.com/hosted.png", nil
}

func (f *fakeUploader) Delete(_ context.Context, _ string) error {
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.PortfolioEventPayload
}

func (f *fakePublisher) PublishPortfolioEvent(_ context.Context, payload event.PortfolioEventPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, payload)
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]string
	getErr      error
	setErr      error
	invalidated []uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]string)}
}

func (f *fakeCache) Get(_ context.Context, id uuid.UUID) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	html, ok := f.entries[id]
	return html, ok, nil
}

func (f *fakeCache) Set(_ context.Context, id uuid.UUID, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[id] = html
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	f.invalidated = append(f.invalidated, id)
	return nil
}
