package usecase

import (
	"context"
	"errors"
	"strings"

	"vigil-srv/internal/breach"
	"vigil-srv/internal/breach/repository"
	"vigil-srv/internal/model"
	pkgHIBP "vigil-srv/pkg/hibp"
	"vigil-srv/pkg/util"
)

// CheckEmail - Looks up exposure for an email, scores it and caches the
// result keyed by the hashed address so raw emails never land in Redis.
func (uc *implUseCase) CheckEmail(ctx context.Context, sc model.Scope, input breach.CheckInput) (model.BreachCheck, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if util.IsEmail(email) != nil {
		return model.BreachCheck{}, breach.ErrInvalidEmail
	}

	emailHash := util.HashEmail(email)

	if uc.cache != nil {
		cached, err := uc.cache.GetCheck(ctx, emailHash)
		if err == nil {
			cached.Cached = true
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "breach.usecase.CheckEmail: cache read failed: %v", err)
		}
	}

	breaches, pastes, err := uc.lookup.Lookup(ctx, email)
	if err != nil {
		return model.BreachCheck{}, uc.mapProviderError(ctx, err)
	}

	score := calculateRiskScore(breaches, pastes)
	check := model.BreachCheck{
		Email:         email,
		Breaches:      breaches,
		Pastes:        pastes,
		TotalBreaches: len(breaches),
		TotalPastes:   len(pastes),
		RiskScore:     score,
		RiskLevel:     riskLevel(score),
		CheckedAt:     util.Now(),
	}
	if check.TotalBreaches == 0 && check.TotalPastes == 0 {
		check.Message = "No breaches found for this account"
	}

	if uc.cache != nil {
		if err := uc.cache.SaveCheck(ctx, emailHash, check); err != nil {
			uc.l.Warnf(ctx, "breach.usecase.CheckEmail: cache write failed: %v", err)
		}
	}

	return check, nil
}

// mapProviderError converts provider failures into domain errors. Access
// and rate rejections become a throttle signal carrying the retry hint.
func (uc *implUseCase) mapProviderError(ctx context.Context, err error) error {
	var apiErr *pkgHIBP.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403, 429, 503:
			uc.l.Warnf(ctx, "breach.usecase.CheckEmail: provider throttled (status %d)", apiErr.StatusCode)
			return &breach.ThrottledError{RetryAfter: apiErr.RetryAfter}
		}
	}
	uc.l.Errorf(ctx, "breach.usecase.CheckEmail: lookup failed: %v", err)
	return breach.ErrProviderUnreachable
}
