package cache

import (
	"encoding/json"
	"fmt"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
)

// sessionRecord is the stored form of a wizard session. The flow is stored
// by name and resolved against the registry on load.
type sessionRecord struct {
	Flow  string           `json:"flow"`
	Index int              `json:"index"`
	Draft onboarding.Draft `json:"draft"`
}

func encodeSession(s onboarding.Session) ([]byte, error) {
	if s.Flow == nil {
		return nil, fmt.Errorf("cannot store a session without flow")
	}
	return json.Marshal(sessionRecord{
		Flow:  s.Flow.Name(),
		Index: s.CurrentIndex,
		Draft: s.Draft,
	})
}

func decodeSession(data []byte, flows *onboarding.FlowRegistry) (*onboarding.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode wizard session: %w", err)
	}

	// A flow that no longer exists (renamed between deployments) is treated
	// as an absent session so the wizard restarts from its entry.
	flow, ok := flows.ByName(rec.Flow)
	if !ok {
		return nil, shared.ErrNotFound
	}

	draft := rec.Draft
	if draft == nil {
		draft = onboarding.Draft{}
	}
	return &onboarding.Session{
		Flow:         flow,
		CurrentIndex: rec.Index,
		Draft:        draft,
	}, nil
}
