package http

import (
	"vigil-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnalyzeThreat - Assess a threat description
// @Summary Analyze a threat
// @Description Produces a risk verdict for a threat description, degrading to the deterministic scorer when the LLM provider is unavailable
// @Tags Assessment
// @Accept json
// @Produce json
// @Param body body assessReq true "Assessment request"
// @Success 200 {object} verdictResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assessments/threat [post]
func (h *handler) AnalyzeThreat(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAssessRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AnalyzeThreat: processAssessRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.AnalyzeThreat(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AnalyzeThreat: usecase AnalyzeThreat failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newVerdictResp(output)
	response.OK(c, resp)
}

// AnalyzeBreach - Assess breach exposure findings
// @Summary Analyze a breach
// @Description Produces a risk verdict framed around attack vector and data exposure impact
// @Tags Assessment
// @Accept json
// @Produce json
// @Param body body assessReq true "Assessment request"
// @Success 200 {object} verdictResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assessments/breach [post]
func (h *handler) AnalyzeBreach(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAssessRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AnalyzeBreach: processAssessRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.AnalyzeBreach(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AnalyzeBreach: usecase AnalyzeBreach failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newVerdictResp(output)
	response.OK(c, resp)
}

// AssessRisk - Assess overall risk posture
// @Summary Assess risk
// @Description Produces a risk verdict framed across business, technical and compliance exposure
// @Tags Assessment
// @Accept json
// @Produce json
// @Param body body assessReq true "Assessment request"
// @Success 200 {object} verdictResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assessments/risk [post]
func (h *handler) AssessRisk(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAssessRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AssessRisk: processAssessRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.AssessRisk(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.AssessRisk: usecase AssessRisk failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newVerdictResp(output)
	response.OK(c, resp)
}

// GenerateReport - Generate a security report
// @Summary Generate a security report
// @Description Generates an executive, technical or incident report; stores it and returns a presigned download URL when object storage is configured
// @Tags Assessment
// @Accept json
// @Produce json
// @Param body body reportReq true "Report request"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assessments/report [post]
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.GenerateReport: processReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.GenerateReport(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.GenerateReport: usecase GenerateReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newReportResp(output)
	response.OK(c, resp)
}

// SubmitScan - Submit a text for background scanning
// @Summary Submit a scan
// @Description Persists the scan and enqueues it for the background worker; returns the scan in PROCESSING state
// @Tags Scans
// @Accept json
// @Produce json
// @Param body body submitScanReq true "Scan request"
// @Success 200 {object} scanResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scans [post]
func (h *handler) SubmitScan(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processSubmitScanRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.SubmitScan: processSubmitScanRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.SubmitScan(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.SubmitScan: usecase SubmitScan failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newScanResp(output)
	response.OK(c, resp)
}

// GetScan - Fetch a single scan
// @Summary Get a scan
// @Description Returns a scan with its merged analysis and verdict once completed
// @Tags Scans
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} scanResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scans/{id} [get]
func (h *handler) GetScan(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	scanID := c.Param("id")
	sc := scopeFromRequest(c)

	// 2. Call UseCase
	output, err := h.uc.GetScan(ctx, sc, scanID)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.GetScan: usecase GetScan failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	resp := h.newScanResp(output)
	response.OK(c, resp)
}

// ListScans - List the caller's scans
// @Summary List scans
// @Description Pages through the caller's scans newest first, optionally filtered by status
// @Tags Scans
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (PROCESSING, COMPLETED, FAILED)"
// @Success 200 {object} listScansResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scans [get]
func (h *handler) ListScans(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processListScansRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.ListScans: processListScansRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.ListScans(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "assessment.delivery.http.ListScans: usecase ListScans failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newListScansResp(output)
	response.OK(c, resp)
}
