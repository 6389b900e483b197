package assessment

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeThreat assesses a threat description with the configured LLM
	// provider, falling back to the deterministic scorer when the provider
	// is unavailable or fails.
	AnalyzeThreat(ctx context.Context, sc model.Scope, input AssessInput) (model.ThreatVerdict, error)
	// AnalyzeBreach assesses breach exposure findings.
	AnalyzeBreach(ctx context.Context, sc model.Scope, input AssessInput) (model.ThreatVerdict, error)
	// AssessRisk produces an overall risk posture verdict.
	AssessRisk(ctx context.Context, sc model.Scope, input AssessInput) (model.ThreatVerdict, error)
	// GenerateReport builds a security report, stores it and returns a
	// presigned download URL alongside the content.
	GenerateReport(ctx context.Context, sc model.Scope, input ReportInput) (ReportOutput, error)

	// SubmitScan persists a scan in processing state and enqueues it for the
	// background worker.
	SubmitScan(ctx context.Context, sc model.Scope, input SubmitScanInput) (model.ScanReport, error)
	// ProcessScan runs the full analysis pipeline for a previously submitted
	// scan. Called from the Kafka consumer.
	ProcessScan(ctx context.Context, scanID string) error
	// GetScan returns a scan owned by the caller.
	GetScan(ctx context.Context, sc model.Scope, scanID string) (model.ScanReport, error)
	// ListScans pages through the caller's scans, newest first.
	ListScans(ctx context.Context, sc model.Scope, input ListScansInput) (ListScansOutput, error)
}
