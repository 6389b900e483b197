package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assessmentHTTP "vigil-srv/internal/assessment/delivery/http"
	assessmentPostgre "vigil-srv/internal/assessment/repository/postgre"
	assessmentUsecase "vigil-srv/internal/assessment/usecase"
	"vigil-srv/internal/middleware"
)

func (srv *HTTPServer) setupAssessmentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	scanRepo := assessmentPostgre.New(srv.postgresDB, srv.l)

	// Gemini, the producer and MinIO may be nil; the usecase degrades to
	// deterministic verdicts, inline scan processing and URL-less reports.
	uc := assessmentUsecase.New(
		scanRepo,
		srv.analysisUC,
		srv.geminiClient,
		srv.kafkaProducer,
		srv.minioClient,
		srv.l,
		assessmentUsecase.Config{
			ReportBucket: srv.config.MinIO.Bucket,
		},
	)

	handler := assessmentHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Assessment domain registered")
	return nil
}
