package usecase

import (
	"context"
	"testing"
	"time"

	analysisUC "vigil-srv/internal/analysis/usecase"
	"vigil-srv/internal/assessment"
	"vigil-srv/internal/assessment/repository"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/log"
	"vigil-srv/pkg/paginator"
)

type fakeRepo struct {
	scans  map[string]model.ScanReport
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{scans: map[string]model.ScanReport{}}
}

func (r *fakeRepo) CreateScan(ctx context.Context, opt repository.CreateScanOptions) (model.ScanReport, error) {
	r.nextID++
	now := time.Now()
	scan := model.ScanReport{
		ID:        string(rune('a' + r.nextID - 1)),
		UserID:    opt.UserID,
		InputText: opt.InputText,
		InputType: opt.InputType,
		Severity:  opt.Severity,
		Source:    opt.Source,
		Status:    model.ScanStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.scans[scan.ID] = scan
	return scan, nil
}

func (r *fakeRepo) GetScanByID(ctx context.Context, id string) (model.ScanReport, error) {
	scan, ok := r.scans[id]
	if !ok {
		return model.ScanReport{}, repository.ErrNotFound
	}
	return scan, nil
}

func (r *fakeRepo) ListScans(ctx context.Context, opt repository.ListScansOptions) ([]model.ScanReport, int64, error) {
	out := []model.ScanReport{}
	for _, scan := range r.scans {
		if scan.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && scan.Status != opt.Status {
			continue
		}
		out = append(out, scan)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) UpdateCompleted(ctx context.Context, opt repository.UpdateCompletedOptions) error {
	scan, ok := r.scans[opt.ScanID]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	scan.Status = model.ScanStatusCompleted
	scan.Analysis = opt.Analysis
	scan.Verdict = opt.Verdict
	scan.ReportObject = opt.ReportObject
	scan.CompletedAt = &now
	r.scans[opt.ScanID] = scan
	return nil
}

func (r *fakeRepo) UpdateFailed(ctx context.Context, opt repository.UpdateFailedOptions) error {
	scan, ok := r.scans[opt.ScanID]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	scan.Status = model.ScanStatusFailed
	scan.ErrorMessage = opt.ErrorMessage
	scan.CompletedAt = &now
	r.scans[opt.ScanID] = scan
	return nil
}

func newScanUseCase(repo repository.PostgresRepository) assessment.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "test", Encoding: "console"})
	return New(repo, analysisUC.New(l), nil, nil, nil, l, Config{})
}

func TestScanLifecycle(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("inline submit completes the pipeline", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newScanUseCase(repo)

		scan, err := uc.SubmitScan(ctx, sc, assessment.SubmitScanInput{
			Text:     "urgent breach detected on the payment gateway",
			Severity: "critical",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if scan.Status != model.ScanStatusCompleted {
			t.Fatalf("status = %s, want COMPLETED", scan.Status)
		}
		if scan.Analysis == nil || scan.Verdict == nil {
			t.Fatal("completed scan must carry both analysis and verdict")
		}
		if scan.Verdict.RiskScore != 90 {
			t.Errorf("verdict score = %d, want 90 for critical fallback", scan.Verdict.RiskScore)
		}
		if scan.Analysis.Security.ThreatLevel != model.ThreatLevelFromScore(scan.Analysis.Security.ThreatScore) {
			t.Error("analysis level inconsistent with its score")
		}
	})

	t.Run("empty text is rejected before persisting", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newScanUseCase(repo)

		if _, err := uc.SubmitScan(ctx, sc, assessment.SubmitScanInput{}); err != assessment.ErrEmptyDescription {
			t.Errorf("err = %v, want ErrEmptyDescription", err)
		}
		if len(repo.scans) != 0 {
			t.Error("nothing should be persisted on validation failure")
		}
	})

	t.Run("get scan hides other users' scans", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newScanUseCase(repo)

		scan, err := uc.SubmitScan(ctx, sc, assessment.SubmitScanInput{Text: "all clear"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := uc.GetScan(ctx, model.Scope{UserID: "u2"}, scan.ID); err != assessment.ErrScanNotFound {
			t.Errorf("err = %v, want ErrScanNotFound for foreign scan", err)
		}
		if _, err := uc.GetScan(ctx, sc, scan.ID); err != nil {
			t.Errorf("owner lookup failed: %v", err)
		}
	})

	t.Run("process is idempotent for finished scans", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newScanUseCase(repo)

		scan, err := uc.SubmitScan(ctx, sc, assessment.SubmitScanInput{Text: "phishing email reported"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.ProcessScan(ctx, scan.ID); err != nil {
			t.Errorf("reprocessing a completed scan must be a no-op: %v", err)
		}
	})

	t.Run("unknown scan id", func(t *testing.T) {
		uc := newScanUseCase(newFakeRepo())
		if err := uc.ProcessScan(ctx, "missing"); err != assessment.ErrScanNotFound {
			t.Errorf("err = %v, want ErrScanNotFound", err)
		}
	})

	t.Run("list validates status filter", func(t *testing.T) {
		uc := newScanUseCase(newFakeRepo())
		_, err := uc.ListScans(ctx, sc, assessment.ListScansInput{Status: "RUNNING"})
		if err != assessment.ErrInvalidStatus {
			t.Errorf("err = %v, want ErrInvalidStatus", err)
		}

		out, err := uc.ListScans(ctx, sc, assessment.ListScansInput{
			PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Paginator.PerPage != 10 || out.Paginator.CurrentPage != 1 {
			t.Errorf("paginator = %+v", out.Paginator)
		}
	})
}
