package usecase

import (
	"fmt"
	"strings"
	"time"

	"vigil-srv/internal/model"
)

// Fallback confidence levels. The lower value marks verdicts synthesized
// after a provider response could not be parsed.
const (
	fallbackConfidence      = 0.6
	fallbackParseConfidence = 0.5
)

// fallbackVerdict is the deterministic severity-keyed rule table. It never
// fails and always yields a score/level pair consistent with
// model.ThreatLevelFromScore.
func fallbackVerdict(severity string, kind model.AnalysisType, confidence float64) model.ThreatVerdict {
	verdict := model.ThreatVerdict{
		Confidence:   confidence,
		AnalysisType: kind,
		Timestamp:    time.Now().UTC(),
	}

	switch strings.ToLower(severity) {
	case "critical":
		verdict.RiskScore = 90
		verdict.ThreatLevel = model.ThreatLevelCritical
		verdict.Recommendations = []string{
			"Escalate to the incident response team immediately",
			"Isolate affected systems",
			"Preserve evidence for forensic analysis",
		}
	case "high":
		verdict.RiskScore = 75
		verdict.ThreatLevel = model.ThreatLevelHigh
		verdict.Recommendations = []string{
			"Prioritize remediation within 24 hours",
			"Review access logs for related activity",
		}
	case "low":
		verdict.RiskScore = 25
		verdict.ThreatLevel = model.ThreatLevelLow
		verdict.Recommendations = []string{
			"Track in the routine remediation backlog",
		}
	default:
		verdict.RiskScore = 50
		verdict.ThreatLevel = model.ThreatLevelMedium
		verdict.Recommendations = []string{
			"Investigate and re-triage with additional context",
		}
	}

	verdict.KeyFindings = []string{
		fmt.Sprintf("Rule-based assessment from reported severity %q", strings.ToLower(severity)),
	}

	return verdict
}

// fallbackReport renders the fixed-template report from aggregate counters.
func fallbackReport(reportType string, summary model.ReportSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Security Report (%s)\n\n", reportType))
	b.WriteString("## Overview\n\n")
	b.WriteString(fmt.Sprintf("- Total incidents: %d\n", summary.TotalIncidents))
	b.WriteString(fmt.Sprintf("- Critical issues: %d\n", summary.CriticalIssues))
	b.WriteString(fmt.Sprintf("- Resolved issues: %d\n\n", summary.ResolvedIssues))

	open := summary.TotalIncidents - summary.ResolvedIssues
	if open < 0 {
		open = 0
	}
	b.WriteString("## Status\n\n")
	b.WriteString(fmt.Sprintf("%d incidents remain open. ", open))
	if summary.CriticalIssues > 0 {
		b.WriteString(fmt.Sprintf("%d critical issues require immediate attention.\n\n", summary.CriticalIssues))
	} else {
		b.WriteString("No critical issues are currently open.\n\n")
	}

	b.WriteString("## Next Steps\n\n")
	b.WriteString("- Review open incidents by severity\n")
	b.WriteString("- Verify remediation of resolved issues\n")
	b.WriteString("- Re-run the assessment after remediation\n")

	return b.String()
}
