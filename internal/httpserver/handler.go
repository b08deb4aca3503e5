package httpserver

import (
	alertHTTP "smap-embeds/internal/alert/delivery/http"
	alertUC "smap-embeds/internal/alert/usecase"
	embedHTTP "smap-embeds/internal/embed/delivery/http"
	embedUC "smap-embeds/internal/embed/usecase"
	"smap-embeds/internal/middleware"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.discord)
	srv.gin.Use(mw.RequestLogger(), mw.Recovery(), middleware.CORS(middleware.DefaultCORSConfig()))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	embedH := embedHTTP.New(srv.l, embedUC.New(srv.l, srv.builder, srv.discord, srv.storage), srv.discord)
	alertH := alertHTTP.New(srv.l, alertUC.New(srv.l, srv.builder, srv.discord), srv.discord)

	embedH.RegisterRoutes(srv.gin.Group(Api))
	alertH.RegisterRoutes(srv.gin.Group(InternalApi))
}
