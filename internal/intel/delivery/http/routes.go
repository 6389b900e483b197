package http

import (
	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/intel")
	api.Use(mw.Auth())
	{
		api.GET("/overview", h.Overview)
	}
}
