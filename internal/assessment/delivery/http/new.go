package http

import (
	"vigil-srv/internal/assessment"
	"vigil-srv/pkg/discord"
	"vigil-srv/pkg/log"

	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for assessment HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      assessment.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc assessment.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
