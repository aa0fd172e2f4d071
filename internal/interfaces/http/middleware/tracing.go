package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxTraceAttrLength bounds header-sourced span attributes.
const maxTraceAttrLength = 128

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns OpenTelemetry tracing middleware. The otelgin span is
// enriched with the request ID and the resolved tenant so report traces can
// be grouped per shop.
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	base := otelgin.Middleware(cfg.ServiceName)

	return func(c *gin.Context) {
		base(c)

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		if requestID := traceAttr(c, "request_id", "X-Request-ID"); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}
		if tenantID, exists := c.Get(TenantIDKey); exists {
			if id, ok := tenantID.(string); ok && id != "" {
				span.SetAttributes(attribute.String("tenant_id", id))
			}
		}
	}
}

// traceAttr reads a context key set by an earlier middleware, falling back
// to the request header. Header values are truncated before they reach the
// trace backend.
func traceAttr(c *gin.Context, key, header string) string {
	if value, exists := c.Get(key); exists {
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}

	h := c.GetHeader(header)
	if len(h) > maxTraceAttrLength {
		return h[:maxTraceAttrLength]
	}
	return h
}
