package httpt

import (
	"time"

	"github.com/Sibghat34/shippo-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _slowRequestThreshold = 3 * time.Second

func (h *LabelHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = h.log.GenerateRequestID()
		}
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *LabelHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > _slowRequestThreshold {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}
