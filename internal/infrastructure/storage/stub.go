package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/rentflow/backend/internal/domain/onboarding"
)

var _ onboarding.DocumentStorage = (*StubObjectStorage)(nil)

// StubObjectStorage keeps documents in memory. It backs development setups
// without an object store.
type StubObjectStorage struct {
	// BaseURL prefixes returned document URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Store keeps the document in memory and returns a fake URL
func (s *StubObjectStorage) Store(ctx context.Context, doc onboarding.Document) (*onboarding.StoredDocument, error) {
	if doc.OwnerID == "" {
		return nil, errors.New("document owner is required")
	}
	data, err := io.ReadAll(doc.Body)
	if err != nil {
		return nil, err
	}

	key := documentKey(doc.OwnerID, doc.FileName)
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return &onboarding.StoredDocument{Key: key, URL: s.BaseURL + "/" + key}, nil
}

// Delete forgets a stored document
func (s *StubObjectStorage) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// Object returns the stored bytes of storageKey
func (s *StubObjectStorage) Object(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}
