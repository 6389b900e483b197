package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intelHTTP "vigil-srv/internal/intel/delivery/http"
	intelOTX "vigil-srv/internal/intel/repository/otx"
	intelRedis "vigil-srv/internal/intel/repository/redis"
	intelUsecase "vigil-srv/internal/intel/usecase"
	"vigil-srv/internal/middleware"
)

func (srv *HTTPServer) setupIntelDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	feedRepo := intelOTX.New(srv.otxClient, srv.otxHasKey, srv.l)
	cacheRepo := intelRedis.New(srv.redisClient, srv.l)

	uc := intelUsecase.New(feedRepo, cacheRepo, srv.l)

	handler := intelHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Intel domain registered")
	return nil
}
