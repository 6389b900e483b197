package assessment

import (
	"time"

	"vigil-srv/internal/model"
	"vigil-srv/pkg/paginator"
)

const (
	// AssessTimeout caps a single provider call, fallback included.
	AssessTimeout = 30 * time.Second

	// MaxDescriptionLength bounds the free-text threat description.
	MaxDescriptionLength = 10000
)

// Report types accepted by GenerateReport.
const (
	ReportTypeExecutive = "executive"
	ReportTypeTechnical = "technical"
	ReportTypeIncident  = "incident"
)

type AssessInput struct {
	Description string
	Severity    string
	Source      string
	Metadata    map[string]string
}

type ReportInput struct {
	Type    string
	Summary model.ReportSummary
}

type ReportOutput struct {
	Report      model.SecurityReport
	ObjectName  string
	DownloadURL string
}

type SubmitScanInput struct {
	Text      string
	InputType string
	Severity  string
	Source    string
}

type ListScansInput struct {
	PaginateQuery paginator.PaginateQuery
	Status        string
}

type ListScansOutput struct {
	Scans     []model.ScanReport
	Paginator paginator.Paginator
}
