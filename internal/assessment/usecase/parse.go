package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"vigil-srv/internal/model"
)

// Parser defaults when a field cannot be found in the provider response.
const (
	defaultRiskScore  = 50
	defaultLevel      = model.ThreatLevelMedium
	defaultConfidence = 0.7
)

var (
	riskScoreRe   = regexp.MustCompile(`(?i)risk\s*score\s*[:=]?\s*(\d{1,3})`)
	threatLevelRe = regexp.MustCompile(`(?i)threat\s*level\s*[:=]?\s*\**\s*(critical|high|medium|low)`)
	confidenceRe  = regexp.MustCompile(`(?i)confidence\s*[:=]?\s*(0?\.\d+|1\.0|1|0)`)

	recommendationHeadRe = regexp.MustCompile(`(?i)recommendation`)
	findingHeadRe        = regexp.MustCompile(`(?i)(key\s*)?finding`)
	bulletRe             = regexp.MustCompile(`^\s*[-*•]\s*(.+)$`)
)

// parseVerdict extracts a structured verdict from the provider's free-text
// response. Missing fields fall back to typed defaults; the raw text is
// always preserved on the verdict. ok is false when the response carried no
// recognizable field at all, which callers treat as a parse failure.
func parseVerdict(raw string, kind model.AnalysisType) (model.ThreatVerdict, bool) {
	verdict := model.ThreatVerdict{
		RiskScore:    defaultRiskScore,
		ThreatLevel:  defaultLevel,
		Confidence:   defaultConfidence,
		RawResponse:  raw,
		AnalysisType: kind,
		Timestamp:    time.Now().UTC(),
	}

	if strings.TrimSpace(raw) == "" {
		return verdict, false
	}

	matched := false
	if m := riskScoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil && score >= 0 && score <= 100 {
			verdict.RiskScore = score
			matched = true
		}
	}
	if m := threatLevelRe.FindStringSubmatch(raw); m != nil {
		verdict.ThreatLevel = model.ThreatLevel(strings.ToLower(m[1]))
		matched = true
	}
	if m := confidenceRe.FindStringSubmatch(raw); m != nil {
		if conf, err := strconv.ParseFloat(m[1], 64); err == nil && conf >= 0 && conf <= 1 {
			verdict.Confidence = conf
			matched = true
		}
	}

	verdict.Recommendations = extractSection(raw, recommendationHeadRe)
	if len(verdict.Recommendations) > 0 {
		matched = true
	} else {
		verdict.Recommendations = []string{"Review the assessment manually"}
	}
	verdict.KeyFindings = extractSection(raw, findingHeadRe)
	if len(verdict.KeyFindings) > 0 {
		matched = true
	} else {
		verdict.KeyFindings = []string{"No specific findings extracted"}
	}

	return verdict, matched
}

// extractSection collects the bullet lines that follow a heading matching
// headRe, stopping at the first non-bullet, non-empty line.
func extractSection(raw string, headRe *regexp.Regexp) []string {
	lines := strings.Split(raw, "\n")
	items := []string{}

	inSection := false
	for _, line := range lines {
		if !inSection {
			if headRe.MatchString(line) && !bulletRe.MatchString(line) {
				inSection = true
			}
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			if item := strings.TrimSpace(m[1]); item != "" {
				items = append(items, item)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		break
	}

	return items
}
