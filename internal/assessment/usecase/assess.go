package usecase

import (
	"context"

	"vigil-srv/internal/assessment"
	"vigil-srv/internal/model"
)

// AnalyzeThreat - Threat-framed assessment
func (uc *implUseCase) AnalyzeThreat(ctx context.Context, sc model.Scope, input assessment.AssessInput) (model.ThreatVerdict, error) {
	return uc.assess(ctx, model.AnalysisTypeThreat, input)
}

// AnalyzeBreach - Breach-framed assessment
func (uc *implUseCase) AnalyzeBreach(ctx context.Context, sc model.Scope, input assessment.AssessInput) (model.ThreatVerdict, error) {
	return uc.assess(ctx, model.AnalysisTypeBreach, input)
}

// AssessRisk - Risk-posture assessment
func (uc *implUseCase) AssessRisk(ctx context.Context, sc model.Scope, input assessment.AssessInput) (model.ThreatVerdict, error) {
	return uc.assess(ctx, model.AnalysisTypeRisk, input)
}

// assess runs one assessment. Provider failures of any kind degrade to the
// deterministic fallback; only input validation errors reach the caller.
func (uc *implUseCase) assess(ctx context.Context, kind model.AnalysisType, input assessment.AssessInput) (model.ThreatVerdict, error) {
	if input.Description == "" {
		return model.ThreatVerdict{}, assessment.ErrEmptyDescription
	}
	if len(input.Description) > assessment.MaxDescriptionLength {
		return model.ThreatVerdict{}, assessment.ErrDescriptionTooLong
	}

	if uc.provider == nil {
		return fallbackVerdict(input.Severity, kind, fallbackConfidence), nil
	}

	ctx, cancel := context.WithTimeout(ctx, assessment.AssessTimeout)
	defer cancel()

	raw, err := uc.provider.Generate(ctx, uc.buildAssessPrompt(kind, input))
	if err != nil {
		uc.l.Warnf(ctx, "assessment.usecase.assess: provider failed, using fallback: %v", err)
		return fallbackVerdict(input.Severity, kind, fallbackConfidence), nil
	}

	verdict, ok := parseVerdict(raw, kind)
	if !ok {
		uc.l.Warnf(ctx, "assessment.usecase.assess: unparseable provider response, using fallback")
		fb := fallbackVerdict(input.Severity, kind, fallbackParseConfidence)
		fb.RawResponse = raw
		return fb, nil
	}

	return verdict, nil
}
