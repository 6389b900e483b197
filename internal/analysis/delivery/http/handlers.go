package http

import (
	"vigil-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Full security analysis of a single text
// @Summary Analyze text for security signals
// @Description Runs sentiment scoring, threat scoring, entity extraction and key phrase extraction on a text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analyze request"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.AnalyzeText(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase AnalyzeText failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newAnalyzeResp(output)
	response.OK(c, resp)
}

// Classify - Classify a text into an attack category
// @Summary Classify text
// @Description Assigns one of the known attack categories (breach, malware, phishing, ddos, vulnerability, insider) or general
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Classify request"
// @Success 200 {object} classifyResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis/classify [post]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Classify: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.ClassifyText(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Classify: usecase ClassifyText failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newClassifyResp(output)
	response.OK(c, resp)
}

// Summarize - Extractive summary of a text
// @Summary Summarize text
// @Description Returns an extractive summary preferring sentences that carry security keywords
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Summarize request"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis/summarize [post]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Summarize: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.SummarizeText(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Summarize: usecase SummarizeText failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newSummaryResp(output)
	response.OK(c, resp)
}

// Entities - Extract entities from a text
// @Summary Extract entities
// @Description Extracts organizations, dates, numbers, emails, URLs, IP addresses and phone numbers
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Entities request"
// @Success 200 {object} entitiesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis/entities [post]
func (h *handler) Entities(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Entities: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.ExtractEntities(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Entities: usecase ExtractEntities failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newEntitiesResp(output)
	response.OK(c, resp)
}

// Batch - Analyze multiple texts in one call
// @Summary Batch analyze texts
// @Description Analyzes up to 50 texts; per-item failures are reported inline without aborting the batch
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body batchReq true "Batch request"
// @Success 200 {object} batchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis/batch [post]
func (h *handler) Batch(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processBatchRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Batch: processBatchRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.AnalyzeBatch(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Batch: usecase AnalyzeBatch failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newBatchResp(output)
	response.OK(c, resp)
}
