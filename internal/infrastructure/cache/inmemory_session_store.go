package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
)

type sessionEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemorySessionStore keeps wizard sessions in process memory.
// Sessions are stored encoded so that loads never share draft maps with
// the caller that saved them.
type InMemorySessionStore struct {
	mu        sync.RWMutex
	entries   map[string]sessionEntry
	flows     *onboarding.FlowRegistry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySessionStore creates the store and starts its cleanup goroutine
func NewInMemorySessionStore(flows *onboarding.FlowRegistry, ttl time.Duration) *InMemorySessionStore {
	store := &InMemorySessionStore{
		entries:  make(map[string]sessionEntry),
		flows:    flows,
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Load returns the session stored under key
func (s *InMemorySessionStore) Load(_ context.Context, key string) (*onboarding.Session, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.expired(e, time.Now()) {
		return nil, shared.ErrNotFound
	}
	return decodeSession(e.data, s.flows)
}

// Save stores the session under key
func (s *InMemorySessionStore) Save(_ context.Context, key string, session onboarding.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}

	e := sessionEntry{data: data}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

// Delete removes the session stored under key
func (s *InMemorySessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemorySessionStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// Size returns the number of stored sessions, expired ones included
func (s *InMemorySessionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *InMemorySessionStore) expired(e sessionEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (s *InMemorySessionStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemorySessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
		}
	}
}

var _ onboarding.SessionStore = (*InMemorySessionStore)(nil)
