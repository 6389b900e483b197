package usecase

import (
	"context"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
)

// AnalyzeBatch - Analyzes each text independently.
// One item's failure never aborts the batch; results stay indexed to their
// input positions and Successful+Failed always equals len(input.Texts).
func (uc *implUseCase) AnalyzeBatch(ctx context.Context, sc model.Scope, input analysis.BatchInput) (model.BatchAnalysisResult, error) {
	if len(input.Texts) == 0 {
		return model.BatchAnalysisResult{}, analysis.ErrEmptyBatch
	}
	if len(input.Texts) > analysis.MaxBatchSize {
		return model.BatchAnalysisResult{}, analysis.ErrBatchTooLarge
	}

	result := model.BatchAnalysisResult{
		Items: make([]model.BatchAnalysisItem, len(input.Texts)),
	}

	for i, text := range input.Texts {
		item := model.BatchAnalysisItem{Index: i}

		a, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: text})
		if err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.AnalyzeBatch: item %d failed: %v", i, err)
			item.Error = err.Error()
			result.Failed++
		} else {
			item.Analysis = &a
			result.Successful++
		}

		result.Items[i] = item
	}

	return result, nil
}
