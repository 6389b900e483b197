package http

import (
	"vigil-srv/internal/model"
	"vigil-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processOverviewRequest(c *gin.Context) (overviewReq, model.Scope, error) {
	var req overviewReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
