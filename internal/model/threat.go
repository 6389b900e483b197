package model

import "time"

// AnalysisType tags which assessment flavor produced a verdict.
type AnalysisType string

const (
	AnalysisTypeThreat AnalysisType = "threatAnalysis"
	AnalysisTypeBreach AnalysisType = "breachAnalysis"
	AnalysisTypeRisk   AnalysisType = "riskAssessment"
	AnalysisTypeReport AnalysisType = "reportGeneration"
)

// ThreatInput is the only shape accepted by the assessment engine.
// Severity, when present, is authoritative for the fallback path.
type ThreatInput struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Severity    string            `json:"severity"`
	Source      string            `json:"source"`
	Timestamp   time.Time         `json:"timestamp"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ThreatVerdict is a normalized risk assessment. RiskScore and ThreatLevel
// are kept mutually consistent with ThreatLevelFromScore on the fallback
// path; provider-supplied pairs are carried as parsed.
type ThreatVerdict struct {
	RiskScore       int          `json:"riskScore"`
	ThreatLevel     ThreatLevel  `json:"threatLevel"`
	Confidence      float64      `json:"confidence"`
	Recommendations []string     `json:"recommendations"`
	KeyFindings     []string     `json:"keyFindings"`
	RawResponse     string       `json:"rawResponse,omitempty"`
	AnalysisType    AnalysisType `json:"analysisType"`
	Timestamp       time.Time    `json:"timestamp"`
}

// ReportSummary holds the aggregate counters a security report is built from.
type ReportSummary struct {
	TotalIncidents int `json:"totalIncidents"`
	CriticalIssues int `json:"criticalIssues"`
	ResolvedIssues int `json:"resolvedIssues"`
}

// SecurityReport is a generated report document.
type SecurityReport struct {
	Content     string       `json:"content"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Type        AnalysisType `json:"type"`
}
