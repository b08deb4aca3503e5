package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the embed routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	embeds := r.Group("/embeds")
	{
		embeds.GET("/limits", h.Limits)
		embeds.POST("/preview", h.Preview)
		embeds.POST("/send", h.Send)
	}
}
