package usecase

import "vigil-srv/internal/model"

// scoreSentiment sums the valence of known tokens. Comparative is the
// score divided by the token count, zero for empty input.
func (uc *implUseCase) scoreSentiment(tokens []string) model.Sentiment {
	sentiment := model.Sentiment{
		Positive: []string{},
		Negative: []string{},
		Neutral:  []string{},
	}

	for _, tok := range tokens {
		weight, known := uc.lex.sentiment[tok]
		switch {
		case known && weight > 0:
			sentiment.Score += weight
			sentiment.Positive = append(sentiment.Positive, tok)
		case known && weight < 0:
			sentiment.Score += weight
			sentiment.Negative = append(sentiment.Negative, tok)
		default:
			sentiment.Neutral = append(sentiment.Neutral, tok)
		}
	}

	if len(tokens) > 0 {
		sentiment.Comparative = float64(sentiment.Score) / float64(len(tokens))
	}
	return sentiment
}
