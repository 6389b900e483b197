package usecase

import (
	"context"
	"errors"
	"testing"

	"vigil-srv/internal/breach"
	"vigil-srv/internal/breach/repository"
	"vigil-srv/internal/model"
	pkgHIBP "vigil-srv/pkg/hibp"
	"vigil-srv/pkg/log"
)

type stubLookup struct {
	breaches []model.BreachRecord
	pastes   []model.PasteRecord
	err      error
	calls    int
}

func (s *stubLookup) Lookup(ctx context.Context, email string) ([]model.BreachRecord, []model.PasteRecord, error) {
	s.calls++
	return s.breaches, s.pastes, s.err
}

type memCache struct {
	checks map[string]model.BreachCheck
}

func (c *memCache) GetCheck(ctx context.Context, emailHash string) (model.BreachCheck, error) {
	check, ok := c.checks[emailHash]
	if !ok {
		return model.BreachCheck{}, repository.ErrCacheMiss
	}
	return check, nil
}

func (c *memCache) SaveCheck(ctx context.Context, emailHash string, check model.BreachCheck) error {
	c.checks[emailHash] = check
	return nil
}

func newCheckUseCase(lookup repository.LookupRepository, cache repository.CacheRepository) breach.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "test", Encoding: "console"})
	return New(lookup, cache, l)
}

func TestCheckEmail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("invalid email is rejected", func(t *testing.T) {
		uc := newCheckUseCase(&stubLookup{}, nil)
		if _, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "not-an-email"}); err != breach.ErrInvalidEmail {
			t.Errorf("err = %v, want ErrInvalidEmail", err)
		}
	})

	t.Run("clean account is a zero-score result", func(t *testing.T) {
		uc := newCheckUseCase(&stubLookup{}, nil)
		got, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "clean@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RiskScore != 0 || got.RiskLevel != model.ThreatLevelLow {
			t.Errorf("got score %d level %s, want 0/low", got.RiskScore, got.RiskLevel)
		}
		if got.Message == "" {
			t.Error("clean account should carry a message")
		}
	})

	t.Run("breached account is scored", func(t *testing.T) {
		lookup := &stubLookup{
			breaches: []model.BreachRecord{
				{Name: "Adobe", IsVerified: true, PwnCount: 150_000_000, DataClasses: []string{"Passwords"}},
			},
			pastes: []model.PasteRecord{{ID: "p1"}},
		}
		uc := newCheckUseCase(lookup, nil)
		got, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "victim@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1.5 + 0.5 + verified 1 + size 3 + data class 2 = 8
		if got.RiskScore != 8 || got.RiskLevel != model.ThreatLevelCritical {
			t.Errorf("got score %d level %s, want 8/critical", got.RiskScore, got.RiskLevel)
		}
		if got.TotalBreaches != 1 || got.TotalPastes != 1 {
			t.Errorf("totals = %d/%d", got.TotalBreaches, got.TotalPastes)
		}
	})

	t.Run("second check hits the cache", func(t *testing.T) {
		lookup := &stubLookup{}
		cache := &memCache{checks: map[string]model.BreachCheck{}}
		uc := newCheckUseCase(lookup, cache)

		first, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "cached@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Cached {
			t.Error("first check must not be flagged cached")
		}

		second, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "Cached@Example.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Cached {
			t.Error("second check must come from cache despite case and whitespace")
		}
		if lookup.calls != 1 {
			t.Errorf("lookup calls = %d, want 1", lookup.calls)
		}
	})

	t.Run("throttled provider surfaces retry hint", func(t *testing.T) {
		lookup := &stubLookup{err: &pkgHIBP.APIError{StatusCode: 429, RetryAfter: "12"}}
		uc := newCheckUseCase(lookup, nil)

		_, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "victim@example.com"})
		var throttled *breach.ThrottledError
		if !errors.As(err, &throttled) {
			t.Fatalf("err = %v, want ThrottledError", err)
		}
		if throttled.RetryAfter != "12" {
			t.Errorf("retryAfter = %q, want 12", throttled.RetryAfter)
		}
	})

	t.Run("network failure maps to unreachable", func(t *testing.T) {
		lookup := &stubLookup{err: errors.New("dial tcp: timeout")}
		uc := newCheckUseCase(lookup, nil)

		if _, err := uc.CheckEmail(ctx, sc, breach.CheckInput{Email: "victim@example.com"}); err != breach.ErrProviderUnreachable {
			t.Errorf("err = %v, want ErrProviderUnreachable", err)
		}
	})
}
