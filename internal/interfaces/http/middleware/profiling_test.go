package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSectionOf(t *testing.T) {
	tests := map[string]string{
		"/onboarding/agency/:step":        "onboarding",
		"/registry/companies/:identifier": "registry",
		"/tenant/dashboard":               "dashboard",
		"/dashboard":                      "dashboard",
		"/sign-in":                        "sign-in",
		"/":                               "root",
		"/*any":                           "root",
	}
	for route, want := range tests {
		assert.Equal(t, want, sectionOf(route), route)
	}
}

func TestProfiling_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, enabled := range []bool{true, false} {
		r := gin.New()
		r.Use(Profiling(enabled))
		r.GET("/sign-in", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sign-in", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	}
}
