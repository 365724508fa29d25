package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*OnboardingMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewOnboardingMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumFor(t *testing.T, data metricdata.Aggregation, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok)
	want := attribute.NewSet(attrs...)
	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			return dp.Value
		}
	}
	return 0
}

func TestOnboardingMetrics(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordStep(ctx, "agency", "/onboarding/agency/siret-search", nil)
	m.RecordStep(ctx, "agency", "/onboarding/agency/siret-search", nil)
	m.RecordStep(ctx, "agency", "/onboarding/agency/siret-search", errors.New("boom"))
	m.RecordGateDecision(ctx, "allow")
	m.RecordGateDecision(ctx, "auth_required")
	m.RecordGateDecision(ctx, "allow")
	m.RecordRoleSelected(ctx, "agency", nil)
	m.RecordLookup(ctx, "siret", 120*time.Millisecond, nil)
	m.RecordUpload(ctx, errors.New("s3 down"))
	m.RecordCompleted(ctx, "agency-manual")

	data := collect(t, reader)

	step := func(outcome string) int64 {
		return sumFor(t, data["onboarding.step.submissions"],
			attribute.String("flow", "agency"),
			attribute.String("step", "/onboarding/agency/siret-search"),
			attribute.String("outcome", outcome))
	}
	assert.Equal(t, int64(2), step(OutcomeSuccess))
	assert.Equal(t, int64(1), step(OutcomeFailure))

	assert.Equal(t, int64(2), sumFor(t, data["gate.decisions"], attribute.String("outcome", "allow")))
	assert.Equal(t, int64(1), sumFor(t, data["gate.decisions"], attribute.String("outcome", "auth_required")))
	assert.Equal(t, int64(1), sumFor(t, data["onboarding.role.selections"],
		attribute.String("role", "agency"), attribute.String("outcome", OutcomeSuccess)))
	assert.Equal(t, int64(1), sumFor(t, data["onboarding.document.uploads"], attribute.String("outcome", OutcomeFailure)))
	assert.Equal(t, int64(1), sumFor(t, data["onboarding.flow.completions"], attribute.String("flow", "agency-manual")))

	hist, ok := data["registry.lookup.duration"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}

func TestOnboardingMetrics_NilIsNoop(t *testing.T) {
	var m *OnboardingMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordStep(ctx, "f", "s", nil)
		m.RecordCompleted(ctx, "f")
		m.RecordRoleSelected(ctx, "tenant", nil)
		m.RecordLookup(ctx, "siren", time.Second, nil)
		m.RecordUpload(ctx, nil)
		m.RecordGateDecision(ctx, "allow")
	})
}
