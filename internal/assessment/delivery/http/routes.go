package http

import (
	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		assessments := api.Group("/assessments")
		{
			assessments.POST("/threat", h.AnalyzeThreat)
			assessments.POST("/breach", h.AnalyzeBreach)
			assessments.POST("/risk", h.AssessRisk)
			assessments.POST("/report", h.GenerateReport)
		}

		scans := api.Group("/scans")
		{
			scans.POST("", h.SubmitScan)
			scans.GET("", h.ListScans)
			scans.GET("/:id", h.GetScan)
		}
	}
}
