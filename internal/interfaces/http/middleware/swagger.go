package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/interfaces/http/dto"
)

// SwaggerProtection hides the API documentation when it is disabled
func SwaggerProtection(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeNotFound,
				"API documentation is not available",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
