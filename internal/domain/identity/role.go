package identity

import "strings"

// Role is the platform role carried by an identity. The zero value means
// no role has been chosen yet.
type Role string

const (
	RoleUnset    Role = ""
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAgency   Role = "agency"
)

// ParseRole converts user input into a Role. Unknown values yield RoleUnset
// and false.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTenant:
		return RoleTenant, true
	case RoleLandlord:
		return RoleLandlord, true
	case RoleAgency:
		return RoleAgency, true
	default:
		return RoleUnset, false
	}
}

// IsSet reports whether a role has been assigned
func (r Role) IsSet() bool {
	return r != RoleUnset
}

func (r Role) String() string {
	return string(r)
}

// Identity is an authenticated principal as seen by a single request.
// SessionID identifies the client session the request belongs to and Role
// is the role claim embedded in the session, which may be stale.
type Identity struct {
	UserID    string
	SessionID string
	Role      Role
}
