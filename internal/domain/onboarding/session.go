package onboarding

// Draft is the accumulated set of answers of a wizard session, keyed by
// field name. Values are strings or string slices.
type Draft map[string]any

// Clone returns a shallow copy of the draft
func (d Draft) Clone() Draft {
	cp := make(Draft, len(d))
	for k, v := range d {
		cp[k] = v
	}
	return cp
}

// String returns the string value of key, or "" when absent
func (d Draft) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Strings returns the string slice value of key
func (d Draft) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Session is one client's traversal of a flow. Sessions are values: every
// transition returns a new session and leaves the receiver untouched.
type Session struct {
	Flow         *Flow
	CurrentIndex int
	Draft        Draft
}

// NewSession starts a session on flow at the step matching requestedPath
func NewSession(flow *Flow, requestedPath string) Session {
	return Session{
		Flow:         flow,
		CurrentIndex: ResolveStep(flow, requestedPath),
		Draft:        Draft{},
	}
}

// CurrentStep returns the step id at the session position
func (s Session) CurrentStep() StepID {
	return s.Flow.Step(s.CurrentIndex)
}

// IsFirst reports whether the session is on the first step
func (s Session) IsFirst() bool {
	return s.CurrentIndex <= 0
}

// IsLast reports whether the session is on the final step
func (s Session) IsLast() bool {
	return s.CurrentIndex >= s.Flow.Last()
}

// Advance moves to the next step. On the last step it is a no-op; leaving
// the flow is the caller's concern.
func (s Session) Advance() Session {
	next := s
	next.CurrentIndex = s.Flow.clamp(s.CurrentIndex)
	if next.CurrentIndex+1 < s.Flow.Len() {
		next.CurrentIndex++
	}
	return next
}

// Retreat moves to the previous step. On the first step it is a no-op.
func (s Session) Retreat() Session {
	prev := s
	prev.CurrentIndex = s.Flow.clamp(s.CurrentIndex)
	if prev.CurrentIndex > 0 {
		prev.CurrentIndex--
	}
	return prev
}

// MergeDraft shallow-merges partial into the draft. Keys in partial
// overwrite existing keys; other keys are kept.
func (s Session) MergeDraft(partial Draft) Session {
	merged := s.Draft.Clone()
	for k, v := range partial {
		merged[k] = v
	}
	out := s
	out.Draft = merged
	return out
}

// Branch starts a session on target carrying the current draft over. The
// new session is positioned on target's first step.
func (s Session) Branch(target *Flow) Session {
	return Session{
		Flow:         target,
		CurrentIndex: 0,
		Draft:        s.Draft.Clone(),
	}
}

// PreviousStep returns the step before the current one, if any
func (s Session) PreviousStep() (StepID, bool) {
	if s.IsFirst() {
		return "", false
	}
	return s.Flow.Step(s.CurrentIndex - 1), true
}

// NextStep returns the step after the current one, if any
func (s Session) NextStep() (StepID, bool) {
	if s.IsLast() {
		return "", false
	}
	return s.Flow.Step(s.CurrentIndex + 1), true
}
