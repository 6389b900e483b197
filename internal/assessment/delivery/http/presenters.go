package http

import (
	"vigil-srv/internal/assessment"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/paginator"
	"vigil-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type assessReq struct {
	Description string            `json:"description" binding:"required"`
	Severity    string            `json:"severity,omitempty"`
	Source      string            `json:"source,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func (r assessReq) toInput() assessment.AssessInput {
	return assessment.AssessInput{
		Description: r.Description,
		Severity:    r.Severity,
		Source:      r.Source,
		Metadata:    r.Metadata,
	}
}

type reportReq struct {
	Type           string `json:"type" binding:"required"`
	TotalIncidents int    `json:"total_incidents"`
	CriticalIssues int    `json:"critical_issues"`
	ResolvedIssues int    `json:"resolved_issues"`
}

func (r reportReq) toInput() assessment.ReportInput {
	return assessment.ReportInput{
		Type: r.Type,
		Summary: model.ReportSummary{
			TotalIncidents: r.TotalIncidents,
			CriticalIssues: r.CriticalIssues,
			ResolvedIssues: r.ResolvedIssues,
		},
	}
}

type submitScanReq struct {
	Text      string `json:"text" binding:"required"`
	InputType string `json:"input_type,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Source    string `json:"source,omitempty"`
}

func (r submitScanReq) toInput() assessment.SubmitScanInput {
	return assessment.SubmitScanInput{
		Text:      r.Text,
		InputType: r.InputType,
		Severity:  r.Severity,
		Source:    r.Source,
	}
}

type listScansReq struct {
	paginator.PaginateQuery
	Status string `form:"status"`
}

func (r listScansReq) toInput() assessment.ListScansInput {
	return assessment.ListScansInput{
		PaginateQuery: r.PaginateQuery,
		Status:        r.Status,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type verdictResp struct {
	RiskScore       int      `json:"risk_score"`
	ThreatLevel     string   `json:"threat_level"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	KeyFindings     []string `json:"key_findings"`
	AnalysisType    string   `json:"analysis_type"`
	Timestamp       string   `json:"timestamp"`
}

type reportResp struct {
	Content     string `json:"content"`
	Type        string `json:"type"`
	GeneratedAt string `json:"generated_at"`
	ObjectName  string `json:"object_name,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

type scanResp struct {
	ID           string       `json:"id"`
	InputType    string       `json:"input_type,omitempty"`
	Severity     string       `json:"severity,omitempty"`
	Source       string       `json:"source,omitempty"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Verdict      *verdictResp `json:"verdict,omitempty"`
	ThreatScore  *int         `json:"threat_score,omitempty"`
	ThreatLevel  string       `json:"threat_level,omitempty"`
	CompletedAt  string       `json:"completed_at,omitempty"`
	CreatedAt    string       `json:"created_at"`
}

type listScansResp struct {
	Scans     []scanResp                  `json:"scans"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newVerdictResp(v model.ThreatVerdict) verdictResp {
	return verdictResp{
		RiskScore:       v.RiskScore,
		ThreatLevel:     string(v.ThreatLevel),
		Confidence:      v.Confidence,
		Recommendations: v.Recommendations,
		KeyFindings:     v.KeyFindings,
		AnalysisType:    string(v.AnalysisType),
		Timestamp:       v.Timestamp.Format(response.DateTimeFormat),
	}
}

func (h *handler) newReportResp(output assessment.ReportOutput) reportResp {
	return reportResp{
		Content:     output.Report.Content,
		Type:        string(output.Report.Type),
		GeneratedAt: output.Report.GeneratedAt.Format(response.DateTimeFormat),
		ObjectName:  output.ObjectName,
		DownloadURL: output.DownloadURL,
	}
}

func (h *handler) newScanResp(scan model.ScanReport) scanResp {
	resp := scanResp{
		ID:           scan.ID,
		InputType:    scan.InputType,
		Severity:     scan.Severity,
		Source:       scan.Source,
		Status:       scan.Status,
		ErrorMessage: scan.ErrorMessage,
		CreatedAt:    scan.CreatedAt.Format(response.DateTimeFormat),
	}
	if scan.CompletedAt != nil {
		resp.CompletedAt = scan.CompletedAt.Format(response.DateTimeFormat)
	}
	if scan.Verdict != nil {
		v := h.newVerdictResp(*scan.Verdict)
		resp.Verdict = &v
	}
	if scan.Analysis != nil {
		score := scan.Analysis.Security.ThreatScore
		resp.ThreatScore = &score
		resp.ThreatLevel = string(scan.Analysis.Security.ThreatLevel)
	}
	return resp
}

func (h *handler) newListScansResp(output assessment.ListScansOutput) listScansResp {
	resp := listScansResp{
		Scans:     make([]scanResp, len(output.Scans)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, scan := range output.Scans {
		resp.Scans[i] = h.newScanResp(scan)
	}
	return resp
}
