package usecase

import (
	"strings"
	"time"

	"vigil-srv/internal/model"
)

// Category display names in rule priority order.
const (
	categoryPhishing     = "Phishing Attempts"
	categoryMalware      = "Malware Detections"
	categoryUnauthorized = "Unauthorized Access"
	categoryExfiltration = "Data Exfiltration"
	categoryDDoS         = "DDoS Attacks"
	categoryOther        = "Other"
)

// deriveSeverity buckets a pulse's indicator count into a base weight,
// bumps it by the strongest matching tag group, then re-buckets to the
// four-level scale.
func deriveSeverity(indicatorCount int, tags []string) model.ThreatLevel {
	weight := 2
	switch {
	case indicatorCount >= 30:
		weight = 10
	case indicatorCount >= 15:
		weight = 7
	case indicatorCount >= 7:
		weight = 4
	}

	switch {
	case tagsContain(tags, "ransomware", "apt"):
		weight += 4
	case tagsContain(tags, "malware", "ddos", "botnet"):
		weight += 3
	case tagsContain(tags, "phishing"):
		weight += 2
	}

	switch {
	case weight >= 10:
		return model.ThreatLevelCritical
	case weight >= 7:
		return model.ThreatLevelHigh
	case weight >= 4:
		return model.ThreatLevelMedium
	default:
		return model.ThreatLevelLow
	}
}

// deriveCategory applies the tag-substring rules in fixed priority order.
func deriveCategory(tags []string) string {
	switch {
	case tagsContain(tags, "phishing", "credential"):
		return categoryPhishing
	case tagsContain(tags, "ransomware", "malware", "botnet"):
		return categoryMalware
	case tagsContain(tags, "bruteforce", "unauthorized"):
		return categoryUnauthorized
	case tagsContain(tags, "exfiltration", "leak"):
		return categoryExfiltration
	case tagsContain(tags, "ddos", "dos"):
		return categoryDDoS
	default:
		return categoryOther
	}
}

func tagsContain(tags []string, needles ...string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, needle := range needles {
			if strings.Contains(lower, needle) {
				return true
			}
		}
	}
	return false
}

// pulseTime parses a pulse timestamp, preferring Modified over Created.
// ok is false when neither field carries a parseable time.
func pulseTime(p model.Pulse) (time.Time, bool) {
	for _, raw := range []string{p.Modified, p.Created} {
		if raw == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
