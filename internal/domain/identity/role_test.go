package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"tenant", RoleTenant, true},
		{"landlord", RoleLandlord, true},
		{"agency", RoleAgency, true},
		{" Agency ", RoleAgency, true},
		{"", RoleUnset, false},
		{"admin", RoleUnset, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRole_IsSet(t *testing.T) {
	assert.False(t, RoleUnset.IsSet())
	assert.True(t, RoleTenant.IsSet())
	assert.Equal(t, "landlord", RoleLandlord.String())
}
