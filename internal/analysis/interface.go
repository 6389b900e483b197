package analysis

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeText runs the full security text analysis. Empty text yields a
	// well-formed zero-valued result, not an error.
	AnalyzeText(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.SecurityTextAnalysis, error)

	// ClassifyText assigns one of the fixed attack categories, or "general".
	ClassifyText(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.TextClassification, error)

	// SummarizeText produces an extractive two-sentence summary.
	SummarizeText(ctx context.Context, sc model.Scope, input AnalyzeInput) (SummaryOutput, error)

	// ExtractEntities returns the pattern-extracted entities only.
	ExtractEntities(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.Entities, error)

	// AnalyzeBatch analyzes up to MaxBatchSize texts with per-item failure
	// isolation; results are indexed to input positions.
	AnalyzeBatch(ctx context.Context, sc model.Scope, input BatchInput) (model.BatchAnalysisResult, error)
}
