package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	breachHTTP "vigil-srv/internal/breach/delivery/http"
	breachHIBP "vigil-srv/internal/breach/repository/hibp"
	breachRedis "vigil-srv/internal/breach/repository/redis"
	breachUsecase "vigil-srv/internal/breach/usecase"
	"vigil-srv/internal/middleware"
)

func (srv *HTTPServer) setupBreachDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	lookupRepo := breachHIBP.New(srv.hibpClient, srv.l)
	cacheRepo := breachRedis.New(srv.redisClient, srv.l)

	uc := breachUsecase.New(lookupRepo, cacheRepo, srv.l)

	handler := breachHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Breach domain registered")
	return nil
}
