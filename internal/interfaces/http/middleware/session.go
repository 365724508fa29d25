package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appaccess "github.com/rentflow/backend/internal/application/access"
	"github.com/rentflow/backend/internal/domain/access"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/infrastructure/logger"
)

// Context keys set by the session middleware
const (
	SessionClaimsKey = "session_claims"
	SessionRoleKey   = "session_role"
	sessionErrorKey  = "session_error"
)

// Authenticator resolves a session token to its claims
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.SessionClaims, error)
}

// Gate decides whether an identity may reach a path
type Gate interface {
	Evaluate(ctx context.Context, id *identity.Identity, requestedPath string) appaccess.GateResult
}

// ExtractSessionToken returns the session token from the session cookie,
// falling back to an Authorization: Bearer header.
func ExtractSessionToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			return v
		}
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Session authenticates the session token of the request, if any. Requests
// without a valid token continue anonymously; a failing identity provider is
// recorded so that Gate can fail closed.
func Session(authn Authenticator, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		claims, err := authn.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, shared.ErrIdentityProvider) {
				logger.With(ctx, log).Error("Session check failed", zap.Error(err))
				c.Set(sessionErrorKey, err)
			} else {
				logger.With(ctx, log).Debug("Ignoring invalid session token", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(SessionClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithIdentity(ctx, claims.UserID, claims.ID))
		c.Next()
	}
}

// GateRedirects applies the route gate. Static assets and infrastructure
// endpoints pass through; any other request the gate refuses is answered
// with a 307 to the decision's redirect target.
func GateRedirects(gate Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if access.IsStaticAsset(c.Request.URL.Path) {
			c.Next()
			return
		}

		requested := c.Request.URL.RequestURI()
		if _, failed := c.Get(sessionErrorKey); failed {
			redirect(c, access.FailClosed(requested))
			return
		}

		var id *identity.Identity
		if claims, ok := GetSessionClaims(c); ok {
			id = claims.Identity()
		}

		result := gate.Evaluate(c.Request.Context(), id, requested)
		if !result.Decision.Allowed() {
			redirect(c, result.Decision)
			return
		}

		if result.Role.IsSet() {
			c.Set(SessionRoleKey, result.Role)
		}
		c.Next()
	}
}

func redirect(c *gin.Context, d access.Decision) {
	c.Header("Location", d.Redirect)
	c.AbortWithStatus(http.StatusTemporaryRedirect)
}

// GetSessionClaims returns the claims of the authenticated session
func GetSessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	v, ok := c.Get(SessionClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.SessionClaims)
	return claims, ok && claims != nil
}

// GetIdentity returns the authenticated identity with the role resolved by
// the gate, or nil for anonymous requests.
func GetIdentity(c *gin.Context) *identity.Identity {
	claims, ok := GetSessionClaims(c)
	if !ok {
		return nil
	}
	id := claims.Identity()
	if role, ok := c.Get(SessionRoleKey); ok {
		if r, ok := role.(identity.Role); ok {
			id.Role = r
		}
	}
	return id
}
