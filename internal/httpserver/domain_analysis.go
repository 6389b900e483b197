package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analysisHTTP "vigil-srv/internal/analysis/delivery/http"
	analysisUsecase "vigil-srv/internal/analysis/usecase"
	"vigil-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := analysisUsecase.New(srv.l)
	srv.analysisUC = uc

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
