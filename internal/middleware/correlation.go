package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/miniactivity/server/pkg/logger"
)

const (
	// CorrelationHeader carries the request correlation id back to clients.
	CorrelationHeader = "X-Correlation-ID"

	correlationKey = "correlation_id"
)

// CorrelationID assigns every request a fresh correlation id. It is stored
// in both the gin context and the request context, so handlers, services
// and log lines all trace back to one id.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()

		c.Set(correlationKey, id)
		c.Request = c.Request.WithContext(logger.WithCorrelation(c.Request.Context(), id))
		c.Header(CorrelationHeader, id)

		c.Next()
	}
}

// GetCorrelationID retrieves the request correlation id from context
func GetCorrelationID(c *gin.Context) string {
	if id, ok := c.Get(correlationKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
