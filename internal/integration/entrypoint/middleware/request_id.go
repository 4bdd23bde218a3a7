package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the Gin context key of the request identifier.
const RequestIDKey = "request_id"

// RequestID returns a Gin middleware handler that assigns every request an
// identifier, echoes it in the response and logs the request outcome.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "Request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// GetRequestID returns the request identifier stored by RequestID.
func GetRequestID(c *gin.Context) (string, bool) {
	value, exists := c.Get(RequestIDKey)
	if !exists {
		return "", false
	}
	requestID, ok := value.(string)
	return requestID, ok
}
