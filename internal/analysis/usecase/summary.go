package usecase

import (
	"context"
	"strings"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
)

// SummarizeText - Extractive summary.
// Texts of two sentences or fewer pass through unchanged; otherwise the
// first two keyword-bearing sentences are kept, falling back to the first
// sentence when none carries a lexicon keyword.
func (uc *implUseCase) SummarizeText(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.SummaryOutput, error) {
	if len(input.Text) > analysis.MaxTextLength {
		return analysis.SummaryOutput{}, analysis.ErrTextTooLong
	}

	language := uc.detectLanguage(tokenize(input.Text))

	sentences := splitSentences(input.Text)
	if len(sentences) <= 2 {
		return analysis.SummaryOutput{Summary: input.Text, Language: language}, nil
	}

	relevant := make([]string, 0, 2)
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, kw := range uc.lex.securityKeywords {
			if strings.Contains(lower, kw) {
				relevant = append(relevant, sentence)
				break
			}
		}
		if len(relevant) == 2 {
			break
		}
	}

	if len(relevant) == 0 {
		return analysis.SummaryOutput{Summary: sentences[0], Language: language}, nil
	}
	return analysis.SummaryOutput{Summary: strings.Join(relevant, ". "), Language: language}, nil
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
