package http

import (
	"vigil-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Overview - Threat intel dashboard overview
// @Summary Get the threat-intel overview
// @Description Aggregates the threat-intel feed over a trailing day window; falls back to synthetic data flagged via raw.using_fallback when the feed is unavailable
// @Tags Intel
// @Produce json
// @Param days query int false "Trailing window in days (default 7, max 90)"
// @Success 200 {object} overviewResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/intel/overview [get]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processOverviewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "intel.delivery.http.Overview: processOverviewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.GetOverview(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "intel.delivery.http.Overview: usecase GetOverview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newOverviewResp(output)
	response.OK(c, resp)
}
