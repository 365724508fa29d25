package onboarding

import (
	"testing"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlow(t *testing.T) {
	t.Run("builds ordered flow", func(t *testing.T) {
		f, err := NewFlow("f", "/a", "/b", "/c")

		require.NoError(t, err)
		assert.Equal(t, "f", f.Name())
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, []StepID{"/a", "/b", "/c"}, f.Steps())
		assert.Equal(t, 2, f.Last())
	})

	t.Run("rejects duplicate steps", func(t *testing.T) {
		_, err := NewFlow("f", "/a", "/b", "/a")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate step")
	})

	t.Run("rejects empty flow", func(t *testing.T) {
		_, err := NewFlow("f")
		require.Error(t, err)
	})

	t.Run("rejects empty step", func(t *testing.T) {
		_, err := NewFlow("f", "/a", "")
		require.Error(t, err)
	})

	t.Run("steps copy does not alias", func(t *testing.T) {
		f := MustFlow("f", "/a", "/b")
		steps := f.Steps()
		steps[0] = "/z"

		assert.Equal(t, StepID("/a"), f.Step(0))
	})

	t.Run("MustFlow panics on invalid flow", func(t *testing.T) {
		assert.Panics(t, func() { MustFlow("f", "/a", "/a") })
	})
}

func TestResolveStep(t *testing.T) {
	flows := []*Flow{AgencyFlow, AgencyManualFlow, MustFlow("single", "/only")}

	for _, f := range flows {
		t.Run(f.Name(), func(t *testing.T) {
			for i, step := range f.Steps() {
				assert.Equal(t, i, ResolveStep(f, string(step)))
			}
		})
	}

	t.Run("unknown path falls back to first step", func(t *testing.T) {
		assert.Equal(t, 0, ResolveStep(AgencyFlow, "/onboarding/agency/unknown"))
		assert.Equal(t, 0, ResolveStep(AgencyFlow, ""))
		assert.Equal(t, 0, ResolveStep(AgencyFlow, string(StepManualInfo)))
	})
}

func TestFlow_Step_Clamps(t *testing.T) {
	f := MustFlow("f", "/a", "/b")

	assert.Equal(t, StepID("/a"), f.Step(-3))
	assert.Equal(t, StepID("/b"), f.Step(10))
}

func TestFlowRegistry(t *testing.T) {
	reg := DefaultFlows()

	t.Run("by name", func(t *testing.T) {
		f, ok := reg.ByName(FlowAgencyManual)
		require.True(t, ok)
		assert.Same(t, AgencyManualFlow, f)

		_, ok = reg.ByName("missing")
		assert.False(t, ok)
	})

	t.Run("flow for step prefers registration order", func(t *testing.T) {
		f, ok := reg.FlowForStep(StepFinishingSetup)
		require.True(t, ok)
		assert.Same(t, AgencyFlow, f)

		f, ok = reg.FlowForStep(StepManualAddress)
		require.True(t, ok)
		assert.Same(t, AgencyManualFlow, f)

		_, ok = reg.FlowForStep("/elsewhere")
		assert.False(t, ok)
	})

	t.Run("entry flow", func(t *testing.T) {
		assert.Same(t, AgencyFlow, reg.Entry())
	})
}

func TestDestinationForRole(t *testing.T) {
	assert.Equal(t, "/tenant/dashboard", DestinationForRole(identity.RoleTenant))
	assert.Equal(t, "/landlord/dashboard", DestinationForRole(identity.RoleLandlord))
	assert.Equal(t, "/onboarding/agency/siret-search", DestinationForRole(identity.RoleAgency))
	assert.Equal(t, "/dashboard", DestinationForRole(identity.RoleUnset))

	assert.Equal(t, "/agency/dashboard", DashboardForRole(identity.RoleAgency))
	assert.Equal(t, "/dashboard", DashboardForRole(identity.Role("other")))
}
