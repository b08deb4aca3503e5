package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the alert routes under the internal API group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	alerts := r.Group("/alerts")
	{
		alerts.POST("/crisis", h.Crisis)
		alerts.POST("/onboarding", h.Onboarding)
		alerts.POST("/campaign", h.Campaign)
	}
}
