package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vigil-srv/internal/assessment"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/log"
)

type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func newAssessUseCase(provider *stubProvider) assessment.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "test", Encoding: "console"})
	if provider == nil {
		return New(nil, nil, nil, nil, nil, l, Config{})
	}
	return New(nil, nil, provider, nil, nil, l, Config{})
}

func TestFallbackVerdict(t *testing.T) {
	cases := []struct {
		severity  string
		wantScore int
		wantLevel model.ThreatLevel
	}{
		{"critical", 90, model.ThreatLevelCritical},
		{"high", 75, model.ThreatLevelHigh},
		{"low", 25, model.ThreatLevelLow},
		{"medium", 50, model.ThreatLevelMedium},
		{"", 50, model.ThreatLevelMedium},
		{"bogus", 50, model.ThreatLevelMedium},
		{"CRITICAL", 90, model.ThreatLevelCritical},
	}

	for _, tc := range cases {
		t.Run("severity "+tc.severity, func(t *testing.T) {
			got := fallbackVerdict(tc.severity, model.AnalysisTypeThreat, fallbackConfidence)
			if got.RiskScore != tc.wantScore {
				t.Errorf("risk score = %d, want %d", got.RiskScore, tc.wantScore)
			}
			if got.ThreatLevel != tc.wantLevel {
				t.Errorf("threat level = %s, want %s", got.ThreatLevel, tc.wantLevel)
			}
			if got.Confidence != fallbackConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, fallbackConfidence)
			}
			if len(got.Recommendations) == 0 || len(got.KeyFindings) == 0 {
				t.Errorf("recommendations/findings must not be empty: %+v", got)
			}
			if got.ThreatLevel != model.ThreatLevelFromScore(got.RiskScore) {
				t.Errorf("level %s inconsistent with score %d", got.ThreatLevel, got.RiskScore)
			}
		})
	}
}

func TestParseVerdict(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		raw := `Risk Score: 82
Threat Level: critical
Confidence: 0.9
Key Findings:
- Credential stuffing from a known botnet
- Admin account targeted
Recommendations:
- Rotate all admin credentials
- Enable MFA`
		got, ok := parseVerdict(raw, model.AnalysisTypeThreat)
		if !ok {
			t.Fatal("expected ok")
		}
		if got.RiskScore != 82 || got.ThreatLevel != model.ThreatLevelCritical || got.Confidence != 0.9 {
			t.Errorf("parsed %+v", got)
		}
		if len(got.KeyFindings) != 2 || !strings.Contains(got.KeyFindings[0], "Credential stuffing") {
			t.Errorf("key findings = %v", got.KeyFindings)
		}
		if len(got.Recommendations) != 2 || got.Recommendations[1] != "Enable MFA" {
			t.Errorf("recommendations = %v", got.Recommendations)
		}
		if got.RawResponse != raw {
			t.Error("raw response must be preserved")
		}
	})

	t.Run("missing fields use typed defaults", func(t *testing.T) {
		got, ok := parseVerdict("Threat Level: high\nNothing else of note.", model.AnalysisTypeBreach)
		if !ok {
			t.Fatal("expected ok")
		}
		if got.RiskScore != 50 {
			t.Errorf("risk score = %d, want default 50", got.RiskScore)
		}
		if got.ThreatLevel != model.ThreatLevelHigh {
			t.Errorf("threat level = %s, want high", got.ThreatLevel)
		}
		if got.Confidence != 0.7 {
			t.Errorf("confidence = %v, want default 0.7", got.Confidence)
		}
		if len(got.Recommendations) != 1 || len(got.KeyFindings) != 1 {
			t.Errorf("expected placeholder lists, got %+v", got)
		}
	})

	t.Run("out of range score keeps default", func(t *testing.T) {
		got, _ := parseVerdict("risk score: 250\nthreat level: low", model.AnalysisTypeThreat)
		if got.RiskScore != 50 {
			t.Errorf("risk score = %d, want default 50", got.RiskScore)
		}
	})

	t.Run("unrecognizable response is a parse failure", func(t *testing.T) {
		if _, ok := parseVerdict("lorem ipsum dolor sit amet", model.AnalysisTypeThreat); ok {
			t.Error("expected parse failure")
		}
		if _, ok := parseVerdict("   \n  ", model.AnalysisTypeThreat); ok {
			t.Error("expected parse failure for blank response")
		}
	})
}

func TestAnalyzeThreat(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("no provider goes straight to fallback", func(t *testing.T) {
		uc := newAssessUseCase(nil)
		got, err := uc.AnalyzeThreat(ctx, sc, assessment.AssessInput{
			Description: "suspicious login burst",
			Severity:    "critical",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RiskScore != 90 || got.ThreatLevel != model.ThreatLevelCritical || got.Confidence != 0.6 {
			t.Errorf("got %+v, want fallback critical verdict", got)
		}
	})

	t.Run("provider error is absorbed", func(t *testing.T) {
		uc := newAssessUseCase(&stubProvider{err: errors.New("connection refused")})
		got, err := uc.AnalyzeThreat(ctx, sc, assessment.AssessInput{
			Description: "suspicious login burst",
			Severity:    "high",
		})
		if err != nil {
			t.Fatalf("provider errors must not propagate: %v", err)
		}
		if got.RiskScore != 75 || got.Confidence != 0.6 {
			t.Errorf("got %+v, want high fallback", got)
		}
	})

	t.Run("unparseable response lowers confidence", func(t *testing.T) {
		uc := newAssessUseCase(&stubProvider{response: "I cannot help with that."})
		got, err := uc.AnalyzeThreat(ctx, sc, assessment.AssessInput{
			Description: "suspicious login burst",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Confidence != 0.5 {
			t.Errorf("confidence = %v, want 0.5 on parse failure", got.Confidence)
		}
		if got.RawResponse != "I cannot help with that." {
			t.Error("raw response must be preserved on the parse-failure path")
		}
	})

	t.Run("provider verdict is returned as parsed", func(t *testing.T) {
		uc := newAssessUseCase(&stubProvider{response: "Risk Score: 64\nThreat Level: high\nConfidence: 0.85"})
		got, err := uc.AssessRisk(ctx, sc, assessment.AssessInput{Description: "exposed S3 bucket"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RiskScore != 64 || got.ThreatLevel != model.ThreatLevelHigh || got.Confidence != 0.85 {
			t.Errorf("got %+v", got)
		}
		if got.AnalysisType != model.AnalysisTypeRisk {
			t.Errorf("analysis type = %s, want riskAssessment", got.AnalysisType)
		}
	})

	t.Run("empty description is a validation error", func(t *testing.T) {
		uc := newAssessUseCase(nil)
		_, err := uc.AnalyzeBreach(ctx, sc, assessment.AssessInput{})
		if err != assessment.ErrEmptyDescription {
			t.Errorf("err = %v, want ErrEmptyDescription", err)
		}
	})

	t.Run("oversized description is rejected", func(t *testing.T) {
		uc := newAssessUseCase(nil)
		_, err := uc.AnalyzeThreat(ctx, sc, assessment.AssessInput{
			Description: strings.Repeat("a", assessment.MaxDescriptionLength+1),
		})
		if err != assessment.ErrDescriptionTooLong {
			t.Errorf("err = %v, want ErrDescriptionTooLong", err)
		}
	})
}

func TestGenerateReportTemplate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newAssessUseCase(nil)

	t.Run("template fallback carries the counters", func(t *testing.T) {
		got, err := uc.GenerateReport(ctx, sc, assessment.ReportInput{
			Type: assessment.ReportTypeExecutive,
			Summary: model.ReportSummary{
				TotalIncidents: 12,
				CriticalIssues: 3,
				ResolvedIssues: 7,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"12", "3", "7", "executive"} {
			if !strings.Contains(got.Report.Content, want) {
				t.Errorf("report missing %q:\n%s", want, got.Report.Content)
			}
		}
		if got.Report.Type != model.AnalysisTypeReport {
			t.Errorf("report type = %s", got.Report.Type)
		}
		if got.DownloadURL != "" {
			t.Error("no download URL expected without object storage")
		}
	})

	t.Run("unknown report type is rejected", func(t *testing.T) {
		_, err := uc.GenerateReport(ctx, sc, assessment.ReportInput{Type: "weekly"})
		if err != assessment.ErrInvalidReportType {
			t.Errorf("err = %v, want ErrInvalidReportType", err)
		}
	})
}
