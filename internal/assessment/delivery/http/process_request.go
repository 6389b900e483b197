package http

import (
	"vigil-srv/internal/model"
	"vigil-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAssessRequest(c *gin.Context) (assessReq, model.Scope, error) {
	var req assessReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processReportRequest(c *gin.Context) (reportReq, model.Scope, error) {
	var req reportReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSubmitScanRequest(c *gin.Context) (submitScanReq, model.Scope, error) {
	var req submitScanReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func scopeFromRequest(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processListScansRequest(c *gin.Context) (listScansReq, model.Scope, error) {
	var req listScansReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
