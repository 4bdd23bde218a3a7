// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/integration/entrypoint/dto"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimit returns a Gin middleware handler that rejects request bodies
// larger than maxBytes. A non-positive maxBytes uses DefaultMaxBodyBytes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(c *gin.Context) {
		// Reject early when the declared length is already too large
		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Error: "Request body too large",
				Code:  string(domainerror.ErrCodeInvalidRequest),
			})
			c.Abort()
			return
		}

		// Chunked bodies fail while being read by the binder
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
