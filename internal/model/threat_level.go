package model

// ThreatLevel is the universal four-tier risk scale.
type ThreatLevel string

const (
	ThreatLevelLow      ThreatLevel = "low"
	ThreatLevelMedium   ThreatLevel = "medium"
	ThreatLevelHigh     ThreatLevel = "high"
	ThreatLevelCritical ThreatLevel = "critical"
)

// ThreatLevelFromScore maps a 0-100 score to its level. This mapping is the
// single source of truth wherever a numeric score exists; every score the
// service emits must agree with it.
func ThreatLevelFromScore(score int) ThreatLevel {
	switch {
	case score >= 80:
		return ThreatLevelCritical
	case score >= 60:
		return ThreatLevelHigh
	case score >= 30:
		return ThreatLevelMedium
	default:
		return ThreatLevelLow
	}
}

// IsValidThreatLevel reports whether s is one of the four tiers.
func IsValidThreatLevel(s string) bool {
	switch ThreatLevel(s) {
	case ThreatLevelLow, ThreatLevelMedium, ThreatLevelHigh, ThreatLevelCritical:
		return true
	}
	return false
}
