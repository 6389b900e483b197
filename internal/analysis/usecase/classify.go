package usecase

import (
	"context"
	"strings"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
)

// ClassifyText - Assigns the highest-scoring attack category.
// Confidence is winningScore / categoryCount, kept as-is for compatibility
// with existing consumers even though it is not a normalized probability.
func (uc *implUseCase) ClassifyText(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.TextClassification, error) {
	if len(input.Text) > analysis.MaxTextLength {
		return model.TextClassification{}, analysis.ErrTextTooLong
	}

	lower := strings.ToLower(input.Text)

	scores := make(map[string]int, len(uc.lex.categoryOrder))
	winner := ""
	winningScore := 0
	for _, category := range uc.lex.categoryOrder {
		score := 0
		for _, phrase := range uc.lex.categories[category] {
			score += strings.Count(lower, phrase)
		}
		scores[category] = score
		if score > winningScore {
			winningScore = score
			winner = category
		}
	}

	result := model.TextClassification{
		PrimaryCategory: "general",
		Scores:          scores,
	}
	if winningScore > 0 {
		result.PrimaryCategory = winner
		result.Confidence = float64(winningScore) / float64(len(uc.lex.categoryOrder))
	}
	return result, nil
}
