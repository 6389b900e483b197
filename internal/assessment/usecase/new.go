package usecase

import (
	"vigil-srv/internal/analysis"
	"vigil-srv/internal/assessment"
	"vigil-srv/internal/assessment/repository"
	"vigil-srv/pkg/gemini"
	"vigil-srv/pkg/kafka"
	"vigil-srv/pkg/log"
	"vigil-srv/pkg/minio"
)

const defaultReportBucket = "vigil-reports"

// Config holds configuration for the assessment engine.
type Config struct {
	ReportBucket string
}

// implUseCase - provider is nil when no credential is configured; every
// provider-backed path must degrade to the deterministic fallback.
type implUseCase struct {
	repo       repository.PostgresRepository
	analysisUC analysis.UseCase
	provider   gemini.IGemini
	producer   kafka.IProducer
	minio      minio.MinIO
	l          log.Logger
	config     Config
}

// New - Factory function. provider, producer and minioClient may be nil;
// the matching features then run in their degraded modes.
func New(
	repo repository.PostgresRepository,
	analysisUC analysis.UseCase,
	provider gemini.IGemini,
	producer kafka.IProducer,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) assessment.UseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}

	return &implUseCase{
		repo:       repo,
		analysisUC: analysisUC,
		provider:   provider,
		producer:   producer,
		minio:      minioClient,
		l:          l,
		config:     cfg,
	}
}
