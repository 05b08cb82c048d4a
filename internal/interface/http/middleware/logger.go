package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// Logger 请求日志中间件
// 为每个请求分配request_id，并把带该字段的子logger放进request context，
// 之后各层通过log.Ctx(ctx)输出的日志都会带上request_id
func Logger(slowThreshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		logger := log.Logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case latency > slowThreshold:
			event = logger.Warn().Bool("slow", true)
		default:
			event = logger.Info()
		}

		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			event = event.Str("trace_id", traceID)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("请求完成")
	}
}
