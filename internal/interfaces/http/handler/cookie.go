package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/infrastructure/config"
)

// SessionCookie writes and clears the session cookie
type SessionCookie struct {
	cfg config.CookieConfig
}

// NewSessionCookie creates a SessionCookie. An empty name defaults to __session.
func NewSessionCookie(cfg config.CookieConfig) *SessionCookie {
	if cfg.Name == "" {
		cfg.Name = "__session"
	}
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	return &SessionCookie{cfg: cfg}
}

// Name returns the cookie name
func (s *SessionCookie) Name() string {
	return s.cfg.Name
}

// Set stores token in the cookie until it expires
func (s *SessionCookie) Set(c *gin.Context, token *auth.SessionToken) {
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	s.write(c, token.Token, maxAge)
}

// Clear removes the cookie
func (s *SessionCookie) Clear(c *gin.Context) {
	s.write(c, "", -1)
}

func (s *SessionCookie) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSite(s.cfg.SameSite))
	c.SetCookie(s.cfg.Name, value, maxAge, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, true)
}

func sameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
