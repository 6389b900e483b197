package http

import (
	"vigil-srv/internal/intel"
	"vigil-srv/pkg/discord"
	"vigil-srv/pkg/log"

	"vigil-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for intel HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      intel.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc intel.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
