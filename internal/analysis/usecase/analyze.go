package usecase

import (
	"context"
	"strings"
	"time"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
)

// AnalyzeText - Full security text analysis.
// Flow: tokenize → sentiment → lexicon match → threat score → level → confidence → entities → key phrases
func (uc *implUseCase) AnalyzeText(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.SecurityTextAnalysis, error) {
	if len(input.Text) > analysis.MaxTextLength {
		return model.SecurityTextAnalysis{}, analysis.ErrTextTooLong
	}

	tokens := tokenize(input.Text)
	sentiment := uc.scoreSentiment(tokens)

	keywords := uc.matchSecurityKeywords(input.Text)
	urgencyCount, threatCount := uc.countSignalWords(tokens)

	score := threatScore(sentiment.Score, len(keywords), urgencyCount, threatCount)

	result := model.SecurityTextAnalysis{
		Sentiment: sentiment,
		Security: model.SecuritySignals{
			Keywords:    keywords,
			ThreatScore: score,
			ThreatLevel: model.ThreatLevelFromScore(score),
			Confidence:  analysisConfidence(len(keywords), sentiment.Comparative),
		},
		Entities:   uc.extractEntities(input.Text),
		KeyPhrases: uc.extractKeyPhrases(tokens, analysis.TopKeyPhrases),
		Metadata: model.AnalysisMetadata{
			WordCount:  len(tokens),
			AnalyzedAt: time.Now().UTC(),
		},
	}
	return result, nil
}

// ExtractEntities - Entities only, without the full analysis.
func (uc *implUseCase) ExtractEntities(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.Entities, error) {
	if len(input.Text) > analysis.MaxTextLength {
		return model.Entities{}, analysis.ErrTextTooLong
	}
	return uc.extractEntities(input.Text), nil
}

// matchSecurityKeywords collects lexicon terms present in the text,
// case-insensitive substring match.
func (uc *implUseCase) matchSecurityKeywords(text string) []string {
	lower := strings.ToLower(text)
	hits := []string{}
	for _, kw := range uc.lex.securityKeywords {
		if strings.Contains(lower, kw) {
			hits = append(hits, kw)
		}
	}
	return hits
}

// countSignalWords counts urgency and threat words by exact-token match.
func (uc *implUseCase) countSignalWords(tokens []string) (urgency, threat int) {
	for _, tok := range tokens {
		if _, ok := uc.lex.urgencyWords[tok]; ok {
			urgency++
		}
		if _, ok := uc.lex.threatWords[tok]; ok {
			threat++
		}
	}
	return urgency, threat
}

// threatScore is the fixed weighting of the textual threat signals,
// clamped to 100.
func threatScore(sentimentScore, keywordHits, urgencyCount, threatCount int) int {
	score := 2*abs(sentimentScore) + 5*keywordHits + 8*urgencyCount + 10*threatCount
	if score > 100 {
		return 100
	}
	return score
}

// analysisConfidence starts at 0.5, adds up to 0.3 for keyword hits and 0.2
// for a pronounced sentiment comparative, capped at 1.0.
func analysisConfidence(keywordHits int, comparative float64) float64 {
	confidence := 0.5 + min(0.3, 0.1*float64(keywordHits))
	if abs64(comparative) > 0.1 {
		confidence += 0.2
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
