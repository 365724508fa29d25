package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func spanAttr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing_EnrichesSpans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := setupTestTracer(t)

	r := gin.New()
	r.Use(RequestID(), TracingWithConfig(DefaultTracingConfig()), SpanErrorMarker())
	r.Use(func(c *gin.Context) {
		c.Set(SessionClaimsKey, sessionClaims("user-1", "sess-1", "agency"))
		c.Next()
	})
	r.Use(TracingAttributeInjector())
	r.GET("/agency/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/registry/companies/:identifier", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/agency/dashboard", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/registry/companies/123456789", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2, "infrastructure endpoints are not traced")

	dashboard := spans[0]
	v, ok := spanAttr(dashboard.Attributes(), "user_id")
	require.True(t, ok)
	assert.Equal(t, "user-1", v.AsString())
	v, ok = spanAttr(dashboard.Attributes(), "request_id")
	require.True(t, ok)
	assert.Equal(t, "req-1", v.AsString())

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestTracing_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := setupTestTracer(t)

	r := gin.New()
	r.Use(TracingWithConfig(TracingConfig{Enabled: false}))
	r.GET("/sign-in", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sign-in", nil))

	assert.Empty(t, recorder.Ended())
}
