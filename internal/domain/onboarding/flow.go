// Package onboarding models the onboarding wizard: ordered step flows, the
// per-client wizard session and the draft profile it accumulates.
package onboarding

import (
	"fmt"
)

// StepID identifies a wizard step. Step ids are the route paths of the
// step pages.
type StepID string

// Flow is an ordered, immutable list of unique step ids.
type Flow struct {
	name  string
	steps []StepID
	index map[StepID]int
}

// NewFlow builds a flow. It fails on an empty step list or duplicate ids.
func NewFlow(name string, steps ...StepID) (*Flow, error) {
	if name == "" {
		return nil, fmt.Errorf("onboarding: flow name is required")
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("onboarding: flow %q has no steps", name)
	}

	index := make(map[StepID]int, len(steps))
	for i, s := range steps {
		if s == "" {
			return nil, fmt.Errorf("onboarding: flow %q has an empty step at position %d", name, i)
		}
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("onboarding: flow %q has duplicate step %q", name, s)
		}
		index[s] = i
	}

	cp := make([]StepID, len(steps))
	copy(cp, steps)
	return &Flow{name: name, steps: cp, index: index}, nil
}

// MustFlow is NewFlow for package-level flow definitions
func MustFlow(name string, steps ...StepID) *Flow {
	f, err := NewFlow(name, steps...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the flow name
func (f *Flow) Name() string {
	return f.name
}

// Len returns the number of steps
func (f *Flow) Len() int {
	return len(f.steps)
}

// Steps returns a copy of the ordered step ids
func (f *Flow) Steps() []StepID {
	cp := make([]StepID, len(f.steps))
	copy(cp, f.steps)
	return cp
}

// Step returns the step at position i, clamping i into range
func (f *Flow) Step(i int) StepID {
	return f.steps[f.clamp(i)]
}

// IndexOf returns the position of step and whether it belongs to the flow
func (f *Flow) IndexOf(step StepID) (int, bool) {
	i, ok := f.index[step]
	return i, ok
}

// Contains reports whether step belongs to the flow
func (f *Flow) Contains(step StepID) bool {
	_, ok := f.index[step]
	return ok
}

// Last returns the index of the final step
func (f *Flow) Last() int {
	return len(f.steps) - 1
}

func (f *Flow) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > f.Last() {
		return f.Last()
	}
	return i
}

// ResolveStep returns the position of requestedPath within flow. Paths that
// are not part of the flow resolve to the first step.
func ResolveStep(flow *Flow, requestedPath string) int {
	i, ok := flow.IndexOf(StepID(requestedPath))
	if !ok {
		return 0
	}
	return i
}
