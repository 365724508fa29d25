package onboarding

import "context"

// SessionStore keeps wizard sessions between requests, keyed by client
// session. Load returns shared.ErrNotFound when no session is stored.
type SessionStore interface {
	Load(ctx context.Context, key string) (*Session, error)
	Save(ctx context.Context, key string, s Session) error
	Delete(ctx context.Context, key string) error
}
