package httpserver

import (
	"net/http"

	"smap-embeds/pkg/errors"
	"smap-embeds/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "smap-embeds"
	serviceVersion = "1.0.0"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	limits := srv.builder.Limits()
	response.OK(c, gin.H{
		"status":             "healthy",
		"version":            serviceVersion,
		"service":            serviceName,
		"webhook":            srv.discord.GetWebhookURL() != "",
		"storage":            srv.storage != nil,
		"limits_last_update": limits.LastUpdated.Format("2006-01-02"),
	})
}

// readyCheck fails when uploads are enabled but storage is unreachable.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.storage != nil {
		if err := srv.storage.HealthCheck(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck.HealthCheck: %v", err)
			response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Storage not available", http.StatusServiceUnavailable), nil)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
