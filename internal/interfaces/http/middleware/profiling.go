package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grafana/pyroscope-go"

	"github.com/rentflow/backend/internal/domain/access"
)

// Profiling label names
const (
	ProfilingLabelRoute   = "route"
	ProfilingLabelMethod  = "method"
	ProfilingLabelSection = "section"
)

// Profiling tags the CPU profile of each request with its route, method and
// top-level section (onboarding, registry, dashboard...). Disabled when
// enabled is false.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if access.IsStaticAsset(c.Request.URL.Path) {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := pyroscope.Labels(
			ProfilingLabelRoute, route,
			ProfilingLabelMethod, c.Request.Method,
			ProfilingLabelSection, sectionOf(route),
		)

		pyroscope.TagWrapper(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// sectionOf returns the first path segment of a route, or "root"
func sectionOf(route string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
		return "root"
	}
	if strings.HasSuffix(seg, "dashboard") || strings.HasSuffix(route, "/dashboard") {
		return "dashboard"
	}
	return seg
}
