package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags the request context with a request id, method and path
// so usecase logs carry them, and logs one line per request.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := m.l.With(c.Request.Context(),
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%d in %v", status, time.Since(start))
		case status >= 400:
			m.l.Warnf(ctx, "%d in %v", status, time.Since(start))
		default:
			m.l.Infof(ctx, "%d in %v", status, time.Since(start))
		}
	}
}
