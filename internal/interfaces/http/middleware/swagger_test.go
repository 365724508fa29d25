package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSwaggerProtection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		enabled bool
		status  int
	}{
		{name: "disabled", enabled: false, status: http.StatusNotFound},
		{name: "enabled", enabled: true, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/swagger/*any", SwaggerProtection(tt.enabled), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "swagger"})
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if !tt.enabled {
				assert.Contains(t, w.Body.String(), "NOT_FOUND")
			}
		})
	}
}
