package model

import "time"

// Scan report lifecycle statuses.
const (
	ScanStatusProcessing = "PROCESSING"
	ScanStatusCompleted  = "COMPLETED"
	ScanStatusFailed     = "FAILED"
)

// ScanReport is a persisted scan: the submitted text plus the merged
// text analysis and threat verdict produced for it.
type ScanReport struct {
	ID     string
	UserID string

	// Input
	InputText string
	InputType string
	Severity  string
	Source    string

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Results, stored as JSONB
	Analysis *SecurityTextAnalysis
	Verdict  *ThreatVerdict

	// Generated report object in MinIO, if any
	ReportObject string

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
