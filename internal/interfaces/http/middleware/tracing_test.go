package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
	})
	return recorder
}

func TestTracing_RecordsServerSpan(t *testing.T) {
	recorder := setupSpanRecorder(t)

	router := gin.New()
	router.Use(RequestID())
	router.Use(Tracing())
	router.GET("/api/v1/rates/card", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("GET", "/api/v1/rates/card", nil)
	req.Header.Set("X-Request-ID", "trace-test-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	var foundRequestID bool
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "request_id" {
			foundRequestID = true
			assert.Equal(t, "trace-test-id", attr.Value.AsString())
		}
	}
	assert.True(t, foundRequestID, "span should carry the request_id attribute")
}

func TestTracing_TruncatesOversizedHeaderID(t *testing.T) {
	recorder := setupSpanRecorder(t)

	oversized := make([]byte, MaxRequestIDLength*2)
	for i := range oversized {
		oversized[i] = 'a'
	}

	router := gin.New()
	// No RequestID middleware: the tracing layer falls back to the header
	router.Use(Tracing())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", string(oversized))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "request_id" {
			assert.Len(t, attr.Value.AsString(), MaxRequestIDLength)
		}
	}
}

func TestTracing_DisabledIsPassthrough(t *testing.T) {
	recorder := setupSpanRecorder(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{ServiceName: "test", Enabled: false}))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, recorder.Ended())
}
