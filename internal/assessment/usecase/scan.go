package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/assessment"
	"vigil-srv/internal/assessment/repository"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/paginator"
)

// scanMessage is the Kafka payload linking the worker back to the
// persisted scan.
type scanMessage struct {
	ScanID string `json:"scan_id"`
	UserID string `json:"user_id"`
}

// SubmitScan - Persists a scan in PROCESSING state and enqueues it.
// When no producer is configured the scan is processed inline so the
// endpoint still completes the pipeline, just synchronously.
func (uc *implUseCase) SubmitScan(ctx context.Context, sc model.Scope, input assessment.SubmitScanInput) (model.ScanReport, error) {
	if input.Text == "" {
		return model.ScanReport{}, assessment.ErrEmptyDescription
	}
	if len(input.Text) > analysis.MaxTextLength {
		return model.ScanReport{}, assessment.ErrDescriptionTooLong
	}

	scan, err := uc.repo.CreateScan(ctx, repository.CreateScanOptions{
		UserID:    sc.UserID,
		InputText: input.Text,
		InputType: input.InputType,
		Severity:  input.Severity,
		Source:    input.Source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.SubmitScan: create scan failed: %v", err)
		return model.ScanReport{}, err
	}

	if uc.producer == nil {
		if err := uc.ProcessScan(ctx, scan.ID); err != nil {
			uc.l.Errorf(ctx, "assessment.usecase.SubmitScan: inline processing failed: %v", err)
		}
		return uc.repo.GetScanByID(ctx, scan.ID)
	}

	payload, err := json.Marshal(scanMessage{ScanID: scan.ID, UserID: scan.UserID})
	if err != nil {
		return model.ScanReport{}, fmt.Errorf("SubmitScan: marshal message: %w", err)
	}
	if err := uc.producer.Publish([]byte(scan.ID), payload); err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.SubmitScan: publish failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ScanID:       scan.ID,
			ErrorMessage: fmt.Sprintf("enqueue failed: %v", err),
		})
		return model.ScanReport{}, err
	}

	uc.l.Infof(ctx, "assessment.usecase.SubmitScan: scan %s enqueued", scan.ID)
	return scan, nil
}

// ProcessScan - Runs text analysis and the threat assessment for a
// submitted scan and persists the merged result. A failure in either
// stage marks the scan FAILED instead of propagating.
func (uc *implUseCase) ProcessScan(ctx context.Context, scanID string) error {
	scan, err := uc.repo.GetScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return assessment.ErrScanNotFound
		}
		return err
	}
	if scan.Status != model.ScanStatusProcessing {
		uc.l.Warnf(ctx, "assessment.usecase.ProcessScan: scan %s already %s, skipping", scanID, scan.Status)
		return nil
	}

	sc := model.Scope{UserID: scan.UserID}

	textAnalysis, err := uc.analysisUC.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: scan.InputText})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.ProcessScan: analysis failed for scan %s: %v", scanID, err)
		return uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ScanID:       scanID,
			ErrorMessage: fmt.Sprintf("analysis failed: %v", err),
		})
	}

	verdict, err := uc.assess(ctx, model.AnalysisTypeThreat, assessment.AssessInput{
		Description: scan.InputText,
		Severity:    scan.Severity,
		Source:      scan.Source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.ProcessScan: assessment failed for scan %s: %v", scanID, err)
		return uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ScanID:       scanID,
			ErrorMessage: fmt.Sprintf("assessment failed: %v", err),
		})
	}

	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ScanID:   scanID,
		Analysis: &textAnalysis,
		Verdict:  &verdict,
	}); err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.ProcessScan: persist failed for scan %s: %v", scanID, err)
		return err
	}

	uc.l.Infof(ctx, "assessment.usecase.ProcessScan: scan %s completed", scanID)
	return nil
}

// GetScan - Returns a scan only to its owner
func (uc *implUseCase) GetScan(ctx context.Context, sc model.Scope, scanID string) (model.ScanReport, error) {
	scan, err := uc.repo.GetScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ScanReport{}, assessment.ErrScanNotFound
		}
		uc.l.Errorf(ctx, "assessment.usecase.GetScan: get scan failed: %v", err)
		return model.ScanReport{}, err
	}

	// Ownership is not disclosed; a foreign scan looks like a missing one.
	if scan.UserID != sc.UserID {
		return model.ScanReport{}, assessment.ErrScanNotFound
	}

	return scan, nil
}

// ListScans - Pages through the caller's scans newest first
func (uc *implUseCase) ListScans(ctx context.Context, sc model.Scope, input assessment.ListScansInput) (assessment.ListScansOutput, error) {
	if input.Status != "" &&
		input.Status != model.ScanStatusProcessing &&
		input.Status != model.ScanStatusCompleted &&
		input.Status != model.ScanStatusFailed {
		return assessment.ListScansOutput{}, assessment.ErrInvalidStatus
	}

	input.PaginateQuery.Adjust()

	scans, total, err := uc.repo.ListScans(ctx, repository.ListScansOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  input.PaginateQuery.Limit,
		Offset: input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.ListScans: list failed: %v", err)
		return assessment.ListScansOutput{}, err
	}

	return assessment.ListScansOutput{
		Scans: scans,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(scans)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}, nil
}
