// Package access holds the route authorization policy that decides whether
// a request may reach a page or must be redirected.
package access

import (
	"net/url"
	"strings"

	"github.com/rentflow/backend/internal/domain/identity"
)

// Well-known routes of the policy
const (
	SignInPath        = "/sign-in"
	SignUpPath        = "/sign-up"
	RoleSelectionPath = "/onboarding/role"

	// ReturnParam carries the originally requested path to sign-in
	ReturnParam = "redirect_url"
)

// Outcome is the kind of decision the gate made
type Outcome string

const (
	OutcomeAllow        Outcome = "allow"
	OutcomeAuthRequired Outcome = "auth_required"
	OutcomeRoleRequired Outcome = "role_required"
	// OutcomeProviderFailed means the role could not be resolved and the
	// request was sent back to sign-in
	OutcomeProviderFailed Outcome = "provider_failed"
)

// Decision is the result of Authorize. Redirect is empty when allowed.
type Decision struct {
	Outcome  Outcome
	Redirect string
}

// Allowed reports whether the request may proceed
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}

// Allow is the decision letting a request through
func Allow() Decision {
	return Decision{Outcome: OutcomeAllow}
}

// RedirectToSignIn sends the client to sign-in, remembering returnTo
func RedirectToSignIn(returnTo string) Decision {
	target := SignInPath
	if returnTo != "" {
		target += "?" + url.Values{ReturnParam: {returnTo}}.Encode()
	}
	return Decision{Outcome: OutcomeAuthRequired, Redirect: target}
}

// FailClosed sends the client to sign-in after the identity provider failed
func FailClosed(returnTo string) Decision {
	d := RedirectToSignIn(returnTo)
	d.Outcome = OutcomeProviderFailed
	return d
}

// RedirectToRoleSelection sends the client to pick a role
func RedirectToRoleSelection() Decision {
	return Decision{Outcome: OutcomeRoleRequired, Redirect: RoleSelectionPath}
}

// Policy evaluates route access. Public routes are reachable without an
// identity; every other route is protected.
type Policy struct {
	public map[string]struct{}
}

// NewPolicy builds a policy with the given public routes
func NewPolicy(publicRoutes ...string) *Policy {
	p := &Policy{public: make(map[string]struct{}, len(publicRoutes))}
	for _, r := range publicRoutes {
		p.public[normalizePath(r)] = struct{}{}
	}
	return p
}

// DefaultPolicy is the platform policy: sign-in, sign-up and role selection
// are public.
func DefaultPolicy() *Policy {
	return NewPolicy(SignInPath, SignUpPath, RoleSelectionPath)
}

// IsPublic reports whether path is public. Sub-paths of the sign-in and
// sign-up pages are public as well.
func (p *Policy) IsPublic(path string) bool {
	path = normalizePath(path)
	if _, ok := p.public[path]; ok {
		return true
	}
	for _, auth := range []string{SignInPath, SignUpPath} {
		if _, ok := p.public[auth]; ok && strings.HasPrefix(path, auth+"/") {
			return true
		}
	}
	return false
}

// Authorize decides whether a request for requestedPath may proceed.
// id is nil for unauthenticated requests; role is the identity's current
// role. requestedPath may carry a query string, which is preserved in the
// sign-in return target.
func (p *Policy) Authorize(id *identity.Identity, role identity.Role, requestedPath string) Decision {
	path := requestedPath
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if id == nil {
		if p.IsPublic(path) {
			return Allow()
		}
		return RedirectToSignIn(requestedPath)
	}

	if !role.IsSet() && normalizePath(path) != RoleSelectionPath {
		return RedirectToRoleSelection()
	}
	return Allow()
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}
