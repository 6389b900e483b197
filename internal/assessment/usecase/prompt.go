package usecase

import (
	"fmt"
	"sort"
	"strings"

	"vigil-srv/internal/assessment"
	"vigil-srv/internal/model"
)

const systemPrompt = `You are a senior security analyst. Assess the reported input and respond in plain text with exactly these labeled sections:
Risk Score: <0-100>
Threat Level: <low|medium|high|critical>
Confidence: <0.0-1.0>
Key Findings:
- <finding>
Recommendations:
- <recommendation>
Keep findings and recommendations short and actionable.`

// Instruction suffixes per assessment flavor.
const (
	threatSuffix = `Focus on the nature of the threat, likely actors and immediate containment steps.`
	breachSuffix = `Focus on the attack vector, the scope of exposed data and the user-facing impact.`
	riskSuffix   = `Frame the assessment across business risk, technical risk and compliance exposure.`
)

// buildAssessPrompt - Build the provider prompt for one assessment call
func (uc *implUseCase) buildAssessPrompt(kind model.AnalysisType, input assessment.AssessInput) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	switch kind {
	case model.AnalysisTypeBreach:
		b.WriteString(breachSuffix)
	case model.AnalysisTypeRisk:
		b.WriteString(riskSuffix)
	default:
		b.WriteString(threatSuffix)
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Description: %s\n", input.Description))
	if input.Severity != "" {
		b.WriteString(fmt.Sprintf("Reported severity: %s\n", input.Severity))
	}
	if input.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", input.Source))
	}
	if len(input.Metadata) > 0 {
		keys := make([]string, 0, len(input.Metadata))
		for k := range input.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("Metadata:\n")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("- %s: %s\n", k, input.Metadata[k]))
		}
	}

	return b.String()
}

// buildReportPrompt - Build the provider prompt for report generation
func (uc *implUseCase) buildReportPrompt(reportType string, summary model.ReportSummary) string {
	return fmt.Sprintf(`You are a senior security analyst. Write a concise %s security report in markdown based on these aggregate figures:
- Total incidents: %d
- Critical issues: %d
- Resolved issues: %d
Include an overview, notable risks and next steps.`,
		reportType, summary.TotalIncidents, summary.CriticalIssues, summary.ResolvedIssues)
}
