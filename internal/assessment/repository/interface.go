package repository

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateScan(ctx context.Context, opt CreateScanOptions) (model.ScanReport, error)
	GetScanByID(ctx context.Context, id string) (model.ScanReport, error)
	ListScans(ctx context.Context, opt ListScansOptions) ([]model.ScanReport, int64, error)
	UpdateCompleted(ctx context.Context, opt UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opt UpdateFailedOptions) error
}
