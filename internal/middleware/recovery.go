package middleware

import (
	"smap-embeds/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope and reports it to Discord.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.l.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c, err, m.discord)
			}
		}()
		c.Next()
	}
}
