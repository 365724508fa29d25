package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appaccess "github.com/rentflow/backend/internal/application/access"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
)

type authenticatorFunc func(ctx context.Context, token string) (*auth.SessionClaims, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*auth.SessionClaims, error) {
	return f(ctx, token)
}

type roleResolverFunc func(ctx context.Context, userID string) (identity.Role, error)

func (f roleResolverFunc) CurrentRole(ctx context.Context, userID string) (identity.Role, error) {
	return f(ctx, userID)
}

func sessionClaims(userID, sessionID, role string) *auth.SessionClaims {
	c := &auth.SessionClaims{UserID: userID, Role: role}
	c.ID = sessionID
	return c
}

// tokens: "tenant" has a tenant role claim, "fresh" has no role claim,
// "down" fails on the provider; anything else is invalid.
func newGateRouter(t *testing.T, roles roleResolverFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authn := authenticatorFunc(func(_ context.Context, token string) (*auth.SessionClaims, error) {
		switch token {
		case "tenant":
			return sessionClaims("user-1", "sess-1", "tenant"), nil
		case "fresh":
			return sessionClaims("user-2", "sess-2", ""), nil
		case "down":
			return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "blacklist unavailable", errors.New("dial tcp"))
		default:
			return nil, shared.NewDomainError(shared.CodeAuthRequired, "invalid session")
		}
	})
	gate := appaccess.NewGateService(nil, roles, nil, zap.NewNop())

	r := gin.New()
	r.Use(Session(authn, "__session", zap.NewNop()), GateRedirects(gate))
	ok := func(c *gin.Context) {
		id := GetIdentity(c)
		if id == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.UserID+":"+id.Role.String())
	}
	r.GET("/sign-in", ok)
	r.GET("/onboarding/role", ok)
	r.GET("/agency/dashboard", ok)
	r.GET("/health", ok)
	return r
}

func serveWithToken(r *gin.Engine, path, token string, useCookie bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		if useCookie {
			req.AddCookie(&http.Cookie{Name: "__session", Value: token})
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateRedirects(t *testing.T) {
	unused := roleResolverFunc(func(context.Context, string) (identity.Role, error) {
		t.Fatal("role lookup not expected")
		return identity.RoleUnset, nil
	})

	tests := []struct {
		name     string
		roles    roleResolverFunc
		path     string
		token    string
		status   int
		location string
		body     string
	}{
		{name: "anonymous on sign-in", roles: unused, path: "/sign-in", status: http.StatusOK, body: "anonymous"},
		{name: "anonymous on protected route", roles: unused, path: "/agency/dashboard?tab=units", status: http.StatusTemporaryRedirect,
			location: "/sign-in?redirect_url=%2Fagency%2Fdashboard%3Ftab%3Dunits"},
		{name: "invalid token is anonymous", roles: unused, path: "/agency/dashboard", token: "garbage", status: http.StatusTemporaryRedirect,
			location: "/sign-in?redirect_url=%2Fagency%2Fdashboard"},
		{name: "role claim allows", roles: unused, path: "/agency/dashboard", token: "tenant", status: http.StatusOK, body: "user-1:tenant"},
		{name: "health bypasses gate", roles: unused, path: "/health", token: "down", status: http.StatusOK, body: "anonymous"},
		{name: "provider failure fails closed", roles: unused, path: "/agency/dashboard", token: "down", status: http.StatusTemporaryRedirect,
			location: "/sign-in?redirect_url=%2Fagency%2Fdashboard"},
		{
			name: "missing role claim resolved by provider",
			roles: roleResolverFunc(func(_ context.Context, userID string) (identity.Role, error) {
				return identity.RoleAgency, nil
			}),
			path: "/agency/dashboard", token: "fresh", status: http.StatusOK, body: "user-2:agency",
		},
		{
			name: "no role redirects to role selection",
			roles: roleResolverFunc(func(context.Context, string) (identity.Role, error) {
				return identity.RoleUnset, nil
			}),
			path: "/agency/dashboard", token: "fresh", status: http.StatusTemporaryRedirect, location: "/onboarding/role",
		},
		{name: "role selection reachable without role", roles: unused, path: "/onboarding/role", token: "fresh", status: http.StatusOK, body: "user-2:"},
		{
			name: "role lookup failure fails closed",
			roles: roleResolverFunc(func(context.Context, string) (identity.Role, error) {
				return identity.RoleUnset, errors.New("timeout")
			}),
			path: "/agency/dashboard", token: "fresh", status: http.StatusTemporaryRedirect,
			location: "/sign-in?redirect_url=%2Fagency%2Fdashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGateRouter(t, tt.roles)
			w := serveWithToken(r, tt.path, tt.token, true)

			require.Equal(t, tt.status, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestSession_BearerToken(t *testing.T) {
	r := newGateRouter(t, nil)
	w := serveWithToken(r, "/agency/dashboard", "tenant", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1:tenant", w.Body.String())
}

func TestExtractSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie wins", cookie: "from-cookie", header: "Bearer from-header", want: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", want: "from-header"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "basic auth ignored", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: "__session", Value: tt.cookie})
			}
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractSessionToken(c, "__session"))
		})
	}
}
