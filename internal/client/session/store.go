package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
)

// ErrNoCredential is returned by Store.Get when the credential is absent or
// has expired.
var ErrNoCredential = errors.New("no credential")

// Store keeps credentials by name within one path scope.
type Store interface {
	Get(ctx context.Context, name string) (models.Credential, error)
	Set(ctx context.Context, c models.Credential) error
	Delete(ctx context.Context, name string) error
}

// MemoryStore is a process-local Store. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	now   func() time.Time
	items map[string]models.Credential
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now, items: make(map[string]models.Credential)}
}

func (s *MemoryStore) Get(_ context.Context, name string) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[name]
	if !ok {
		return models.Credential{}, ErrNoCredential
	}
	if c.Expired(s.now()) {
		delete(s.items, name)
		return models.Credential{}, ErrNoCredential
	}
	return c, nil
}

func (s *MemoryStore) Set(_ context.Context, c models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Expired(s.now()) {
		delete(s.items, c.Name)
		return nil
	}
	s.items[c.Name] = c
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, name)
	return nil
}
