package httpserver

import (
	"context"
	"fmt"

	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	root := &srv.gin.RouterGroup

	// Analysis first; the assessment domain reuses its usecase.
	if err := srv.setupAnalysisDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup analysis domain: %w", err)
	}
	if err := srv.setupAssessmentDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup assessment domain: %w", err)
	}
	if err := srv.setupIntelDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup intel domain: %w", err)
	}
	if err := srv.setupBreachDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup breach domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
