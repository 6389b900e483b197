package http

import (
	"vigil-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Check - Breach exposure lookup for an email
// @Summary Check an email for breaches
// @Description Looks up breach and paste exposure for an email and scores it on a 0-10 scale; results are cached for an hour
// @Tags Breaches
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} checkResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/breaches/check [get]
func (h *handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processCheckRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "breach.delivery.http.Check: processCheckRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.CheckEmail(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "breach.delivery.http.Check: usecase CheckEmail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newCheckResp(output)
	response.OK(c, resp)
}
