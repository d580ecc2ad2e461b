package editor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/pkg/apperror"
)

// Store keeps at most one live session per owner between requests.
type Store interface {
	Load(ctx context.Context, ownerID uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewMemoryStore is the process-local Store, used in tests and as a fallback
// when Redis is not configured.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[uuid.UUID]*Session)}
}

func (m *memoryStore) Load(_ context.Context, ownerID uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("editor session", ownerID.String())
	}
	return s, nil
}

func (m *memoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.OwnerID] = s
	return nil
}

func (m *memoryStore) Delete(_ context.Context, ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, ownerID)
	return nil
}
