package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome attribute values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// OnboardingMetrics records onboarding activity. A nil *OnboardingMetrics
// records nothing.
type OnboardingMetrics struct {
	steps          *Counter
	completions    *Counter
	roles          *Counter
	lookups        *Counter
	lookupDuration *Histogram
	uploads        *Counter
	gateDecisions  *Counter
}

// NewOnboardingMetrics registers the onboarding instruments on meter
func NewOnboardingMetrics(meter metric.Meter) (*OnboardingMetrics, error) {
	var (
		m   OnboardingMetrics
		err error
	)
	if m.steps, err = NewCounter(meter, "onboarding.step.submissions", "Wizard step submissions", "{submission}"); err != nil {
		return nil, err
	}
	if m.completions, err = NewCounter(meter, "onboarding.flow.completions", "Completed wizard flows", "{flow}"); err != nil {
		return nil, err
	}
	if m.roles, err = NewCounter(meter, "onboarding.role.selections", "Role selections", "{selection}"); err != nil {
		return nil, err
	}
	if m.lookups, err = NewCounter(meter, "registry.lookups", "Company registry lookups", "{lookup}"); err != nil {
		return nil, err
	}
	if m.lookupDuration, err = NewHistogram(meter, "registry.lookup.duration", "Company registry lookup latency", "s",
		0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10); err != nil {
		return nil, err
	}
	if m.uploads, err = NewCounter(meter, "onboarding.document.uploads", "Proof of registration uploads", "{upload}"); err != nil {
		return nil, err
	}
	if m.gateDecisions, err = NewCounter(meter, "gate.decisions", "Route authorization decisions", "{decision}"); err != nil {
		return nil, err
	}
	return &m, nil
}

func outcome(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String("outcome", OutcomeFailure)
	}
	return attribute.String("outcome", OutcomeSuccess)
}

// RecordStep counts a step submission
func (m *OnboardingMetrics) RecordStep(ctx context.Context, flow, step string, err error) {
	if m == nil {
		return
	}
	m.steps.Inc(ctx, attribute.String("flow", flow), attribute.String("step", step), outcome(err))
}

// RecordCompleted counts a finished flow
func (m *OnboardingMetrics) RecordCompleted(ctx context.Context, flow string) {
	if m == nil {
		return
	}
	m.completions.Inc(ctx, attribute.String("flow", flow))
}

// RecordRoleSelected counts a role selection
func (m *OnboardingMetrics) RecordRoleSelected(ctx context.Context, role string, err error) {
	if m == nil {
		return
	}
	m.roles.Inc(ctx, attribute.String("role", role), outcome(err))
}

// RecordLookup counts a registry lookup and its latency. kind is "siret"
// or "siren".
func (m *OnboardingMetrics) RecordLookup(ctx context.Context, kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String("kind", kind), outcome(err)}
	m.lookups.Inc(ctx, attrs...)
	m.lookupDuration.RecordDuration(ctx, d, attrs...)
}

// RecordUpload counts a document upload
func (m *OnboardingMetrics) RecordUpload(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.uploads.Inc(ctx, outcome(err))
}

// RecordGateDecision counts a gate decision by outcome
func (m *OnboardingMetrics) RecordGateDecision(ctx context.Context, decision string) {
	if m == nil {
		return
	}
	m.gateDecisions.Inc(ctx, attribute.String("outcome", decision))
}
