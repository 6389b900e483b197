package http

import (
	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/analysis")
	api.Use(mw.Auth())
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/classify", h.Classify)
		api.POST("/summarize", h.Summarize)
		api.POST("/entities", h.Entities)
		api.POST("/batch", h.Batch)
	}
}
