package repository

import "vigil-srv/internal/model"

type CreateScanOptions struct {
	UserID    string
	InputText string
	InputType string
	Severity  string
	Source    string
}

type ListScansOptions struct {
	UserID string
	Status string
	Limit  int64
	Offset int64
}

type UpdateCompletedOptions struct {
	ScanID       string
	Analysis     *model.SecurityTextAnalysis
	Verdict      *model.ThreatVerdict
	ReportObject string
}

type UpdateFailedOptions struct {
	ScanID       string
	ErrorMessage string
}
