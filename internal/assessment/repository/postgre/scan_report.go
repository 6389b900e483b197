package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"vigil-srv/internal/assessment/repository"
	"vigil-srv/internal/model"

	"github.com/google/uuid"
)

const scanColumns = `id, user_id, input_text, input_type, severity, source,
		status, error_message, analysis, verdict, report_object,
		completed_at, created_at, updated_at`

// CreateScan - Inserts a scan in PROCESSING state
func (r *implRepository) CreateScan(ctx context.Context, opt repository.CreateScanOptions) (model.ScanReport, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO vigil.scan_reports (id, user_id, input_text, input_type, severity, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + scanColumns

	row := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.InputText, opt.InputType, opt.Severity, opt.Source,
		model.ScanStatusProcessing, now, now,
	)

	scan, err := scanFromRow(row)
	if err != nil {
		return model.ScanReport{}, fmt.Errorf("CreateScan: %w", err)
	}
	return scan, nil
}

// GetScanByID - Fetches a single scan
func (r *implRepository) GetScanByID(ctx context.Context, id string) (model.ScanReport, error) {
	query := `
		SELECT ` + scanColumns + `
		FROM vigil.scan_reports
		WHERE id = $1
	`

	scan, err := scanFromRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ScanReport{}, repository.ErrNotFound
		}
		return model.ScanReport{}, fmt.Errorf("GetScanByID: %w", err)
	}
	return scan, nil
}

// ListScans - Lists a user's scans newest first, with the total count for paging
func (r *implRepository) ListScans(ctx context.Context, opt repository.ListScansOptions) ([]model.ScanReport, int64, error) {
	where := " WHERE user_id = $1"
	args := []interface{}{opt.UserID}
	argIdx := 2

	if opt.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, opt.Status)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM vigil.scan_reports" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListScans: count: %w", err)
	}

	query := "SELECT " + scanColumns + " FROM vigil.scan_reports" + where +
		" ORDER BY created_at DESC"
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
		argIdx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListScans: %w", err)
	}
	defer rows.Close()

	scans := []model.ScanReport{}
	for rows.Next() {
		scan, err := scanFromRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListScans: scan: %w", err)
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListScans: rows: %w", err)
	}

	return scans, total, nil
}

// UpdateCompleted - Marks a scan COMPLETED and stores its results as JSONB
func (r *implRepository) UpdateCompleted(ctx context.Context, opt repository.UpdateCompletedOptions) error {
	analysisJSON, err := json.Marshal(opt.Analysis)
	if err != nil {
		return fmt.Errorf("UpdateCompleted: marshal analysis: %w", err)
	}
	verdictJSON, err := json.Marshal(opt.Verdict)
	if err != nil {
		return fmt.Errorf("UpdateCompleted: marshal verdict: %w", err)
	}

	now := time.Now()
	query := `
		UPDATE vigil.scan_reports
		SET status = $1, analysis = $2, verdict = $3, report_object = $4,
		    error_message = '', completed_at = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		model.ScanStatusCompleted, analysisJSON, verdictJSON, opt.ReportObject,
		now, now, opt.ScanID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCompleted: %w", err)
	}
	return checkAffected(result)
}

// UpdateFailed - Marks a scan FAILED with its error message
func (r *implRepository) UpdateFailed(ctx context.Context, opt repository.UpdateFailedOptions) error {
	now := time.Now()
	query := `
		UPDATE vigil.scan_reports
		SET status = $1, error_message = $2, completed_at = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		model.ScanStatusFailed, opt.ErrorMessage, now, now, opt.ScanID,
	)
	if err != nil {
		return fmt.Errorf("UpdateFailed: %w", err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFromRow(row rowScanner) (model.ScanReport, error) {
	var scan model.ScanReport
	var errorMessage, reportObject sql.NullString
	var analysisJSON, verdictJSON []byte
	var completedAt sql.NullTime

	err := row.Scan(
		&scan.ID, &scan.UserID, &scan.InputText, &scan.InputType,
		&scan.Severity, &scan.Source, &scan.Status, &errorMessage,
		&analysisJSON, &verdictJSON, &reportObject,
		&completedAt, &scan.CreatedAt, &scan.UpdatedAt,
	)
	if err != nil {
		return model.ScanReport{}, err
	}

	scan.ErrorMessage = errorMessage.String
	scan.ReportObject = reportObject.String
	if completedAt.Valid {
		scan.CompletedAt = &completedAt.Time
	}

	if len(analysisJSON) > 0 {
		var analysis model.SecurityTextAnalysis
		if err := json.Unmarshal(analysisJSON, &analysis); err != nil {
			return model.ScanReport{}, fmt.Errorf("unmarshal analysis: %w", err)
		}
		scan.Analysis = &analysis
	}
	if len(verdictJSON) > 0 {
		var verdict model.ThreatVerdict
		if err := json.Unmarshal(verdictJSON, &verdict); err != nil {
			return model.ScanReport{}, fmt.Errorf("unmarshal verdict: %w", err)
		}
		scan.Verdict = &verdict
	}

	return scan, nil
}
