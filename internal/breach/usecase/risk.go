package usecase

import (
	"math"
	"strings"

	"vigil-srv/internal/breach"
	"vigil-srv/internal/model"
)

// Per-breach scoring weights.
const (
	breachWeight = 1.5
	pasteWeight  = 0.5

	sensitiveBonus     = 2.0
	verifiedBonus      = 1.0
	sensitiveDataBonus = 2.0
)

// sensitiveDataCategories flags the data classes that carry the extra
// exposure bonus, matched case-insensitively as substrings.
var sensitiveDataCategories = []string{
	"passwords",
	"credit cards",
	"financial",
	"social security",
}

// calculateRiskScore scores exposure on a 0..10 scale: a weighted count of
// breaches and pastes plus per-breach bonuses for sensitivity, verification,
// size and exposed data classes. Rounded and capped at 10.
func calculateRiskScore(breaches []model.BreachRecord, pastes []model.PasteRecord) int {
	score := breachWeight*float64(len(breaches)) + pasteWeight*float64(len(pastes))

	for _, b := range breaches {
		if b.IsSensitive {
			score += sensitiveBonus
		}
		if b.IsVerified {
			score += verifiedBonus
		}

		switch {
		case b.PwnCount > 100_000_000:
			score += 3
		case b.PwnCount > 10_000_000:
			score += 2
		case b.PwnCount > 1_000_000:
			score += 1
		}

		if hasSensitiveDataClass(b.DataClasses) {
			score += sensitiveDataBonus
		}
	}

	rounded := int(math.Round(score))
	if rounded > breach.MaxRiskScore {
		return breach.MaxRiskScore
	}
	return rounded
}

// riskLevel buckets a 0..10 score into the four-level scale.
func riskLevel(score int) model.ThreatLevel {
	switch {
	case score >= 8:
		return model.ThreatLevelCritical
	case score >= 6:
		return model.ThreatLevelHigh
	case score >= 4:
		return model.ThreatLevelMedium
	default:
		return model.ThreatLevelLow
	}
}

func hasSensitiveDataClass(dataClasses []string) bool {
	for _, dc := range dataClasses {
		lower := strings.ToLower(dc)
		for _, category := range sensitiveDataCategories {
			if strings.Contains(lower, category) {
				return true
			}
		}
	}
	return false
}
