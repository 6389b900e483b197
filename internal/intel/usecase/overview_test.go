package usecase

import (
	"context"
	"testing"
	"time"

	"vigil-srv/internal/intel"
	"vigil-srv/internal/intel/repository"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/log"
	"vigil-srv/pkg/util"
)

type stubFeed struct {
	result repository.FeedResult
	err    error
}

func (f *stubFeed) FetchPulses(ctx context.Context, modifiedSince time.Time) (repository.FeedResult, error) {
	return f.result, f.err
}

func newIntelUseCase(feed repository.FeedRepository) intel.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "test", Encoding: "console"})
	return New(feed, nil, l)
}

func TestDeriveSeverity(t *testing.T) {
	cases := []struct {
		name       string
		indicators int
		tags       []string
		want       model.ThreatLevel
	}{
		{"few indicators no tags", 3, nil, model.ThreatLevelLow},
		{"medium bucket", 8, nil, model.ThreatLevelMedium},
		{"high bucket", 16, nil, model.ThreatLevelHigh},
		{"critical bucket", 35, nil, model.ThreatLevelCritical},
		{"ransomware bumps low to high", 3, []string{"Ransomware"}, model.ThreatLevelHigh},
		{"apt bumps medium to critical", 8, []string{"APT28"}, model.ThreatLevelCritical},
		{"malware bumps low to high", 3, []string{"malware-family"}, model.ThreatLevelHigh},
		{"phishing bumps low to medium", 3, []string{"phishing"}, model.ThreatLevelMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveSeverity(tc.indicators, tc.tags); got != tc.want {
				t.Errorf("deriveSeverity(%d, %v) = %s, want %s", tc.indicators, tc.tags, got, tc.want)
			}
		})
	}
}

func TestDeriveCategory(t *testing.T) {
	cases := []struct {
		tags []string
		want string
	}{
		{[]string{"phishing", "malware"}, categoryPhishing},
		{[]string{"credential-harvesting"}, categoryPhishing},
		{[]string{"botnet"}, categoryMalware},
		{[]string{"bruteforce"}, categoryUnauthorized},
		{[]string{"data-leak"}, categoryExfiltration},
		{[]string{"ddos"}, categoryDDoS},
		{[]string{"dos-attack"}, categoryDDoS},
		{[]string{"apt"}, categoryOther},
		{nil, categoryOther},
	}

	for _, tc := range cases {
		if got := deriveCategory(tc.tags); got != tc.want {
			t.Errorf("deriveCategory(%v) = %q, want %q", tc.tags, got, tc.want)
		}
	}
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("trend covers exactly the requested days ending today", func(t *testing.T) {
		now := time.Now().UTC().Format(time.RFC3339)
		feed := &stubFeed{result: repository.FeedResult{
			Pulses: []model.Pulse{
				{ID: "1", Name: "p1", Tags: []string{"phishing"}, IndicatorCount: 12, Modified: now},
				{ID: "2", Name: "p2", Tags: []string{"ransomware"}, IndicatorCount: 40, Modified: now},
			},
			UsedAPIKey: true,
		}}
		uc := newIntelUseCase(feed)

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.ThreatTrends) != 7 {
			t.Fatalf("trend length = %d, want 7", len(got.ThreatTrends))
		}
		today := util.DateToStr(util.StartOfDay(util.Now()))
		if got.ThreatTrends[6].Date != today {
			t.Errorf("last trend day = %s, want %s", got.ThreatTrends[6].Date, today)
		}
		for i := 1; i < len(got.ThreatTrends); i++ {
			prev, _ := util.StrToDate(got.ThreatTrends[i-1].Date)
			cur, _ := util.StrToDate(got.ThreatTrends[i].Date)
			if !prev.AddDate(0, 0, 1).Equal(cur) {
				t.Errorf("trend days not consecutive: %s -> %s", got.ThreatTrends[i-1].Date, got.ThreatTrends[i].Date)
			}
		}
		if got.Raw.UsingFallback {
			t.Error("real pulses must not be flagged as fallback")
		}
		if !got.Raw.UsedAPIKey {
			t.Error("usedApiKey flag lost")
		}
		if got.Metrics.TotalIncidents != 2 {
			t.Errorf("total incidents = %d, want 2", got.Metrics.TotalIncidents)
		}
	})

	t.Run("resolved is seventy percent of threats", func(t *testing.T) {
		now := time.Now().UTC().Format(time.RFC3339)
		pulses := make([]model.Pulse, 10)
		for i := range pulses {
			pulses[i] = model.Pulse{ID: "p", Modified: now, IndicatorCount: 1}
		}
		uc := newIntelUseCase(&stubFeed{result: repository.FeedResult{Pulses: pulses}})

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		day := got.ThreatTrends[0]
		if day.Threats != 10 || day.Resolved != 7 {
			t.Errorf("trend day = %+v, want 10 threats / 7 resolved", day)
		}
	})

	t.Run("empty feed yields populated fallback", func(t *testing.T) {
		feed := &stubFeed{
			result: repository.FeedResult{
				Attempts: []model.FetchAttempt{
					{URL: "https://otx.example/subscribed", Status: 503, Error: "unavailable"},
					{URL: "https://otx.example/search", Status: 503, Error: "unavailable"},
					{URL: "https://otx.example/activity", Status: 503, Error: "unavailable"},
				},
			},
			err: repository.ErrFeedExhausted,
		}
		uc := newIntelUseCase(feed)

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 7})
		if err != nil {
			t.Fatalf("feed exhaustion must not surface: %v", err)
		}
		if !got.Raw.UsingFallback {
			t.Error("usingFallback must be set")
		}
		if len(got.ThreatTrends) != 7 || len(got.TopThreats) == 0 {
			t.Errorf("fallback overview must be populated: %+v", got)
		}
		if len(got.Raw.Attempts) != 3 {
			t.Errorf("attempts = %d, want all 3 recorded", len(got.Raw.Attempts))
		}
		for _, point := range got.ThreatTrends {
			if point.Threats <= 0 {
				t.Errorf("fallback trend day has no threats: %+v", point)
			}
		}
	})

	t.Run("timestampless pulses are retained", func(t *testing.T) {
		uc := newIntelUseCase(&stubFeed{result: repository.FeedResult{
			Pulses: []model.Pulse{{ID: "1", Name: "no timestamp", IndicatorCount: 5}},
		}})

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Raw.UsingFallback {
			t.Error("a timestampless pulse still counts as real data")
		}
		if got.Metrics.TotalIncidents != 1 {
			t.Errorf("total incidents = %d, want 1", got.Metrics.TotalIncidents)
		}
	})

	t.Run("stale pulses fall out of the window", func(t *testing.T) {
		old := time.Now().UTC().AddDate(0, 0, -30).Format(time.RFC3339)
		uc := newIntelUseCase(&stubFeed{result: repository.FeedResult{
			Pulses: []model.Pulse{{ID: "1", Modified: old, IndicatorCount: 5}},
		}})

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Raw.UsingFallback {
			t.Error("an empty window must switch to fallback")
		}
	})

	t.Run("invalid day windows are rejected", func(t *testing.T) {
		uc := newIntelUseCase(&stubFeed{})
		for _, days := range []int{-1, intel.MaxDays + 1} {
			if _, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: days}); err != intel.ErrInvalidDays {
				t.Errorf("days=%d: err = %v, want ErrInvalidDays", days, err)
			}
		}
	})

	t.Run("top threats alternate change markers", func(t *testing.T) {
		now := time.Now().UTC().Format(time.RFC3339)
		uc := newIntelUseCase(&stubFeed{result: repository.FeedResult{
			Pulses: []model.Pulse{
				{ID: "1", Tags: []string{"phishing"}, Modified: now},
				{ID: "2", Tags: []string{"phishing"}, Modified: now},
				{ID: "3", Tags: []string{"ddos"}, Modified: now},
			},
		}})

		got, err := uc.GetOverview(ctx, sc, intel.OverviewInput{Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.TopThreats) != 2 {
			t.Fatalf("top threats = %+v", got.TopThreats)
		}
		if got.TopThreats[0].Name != categoryPhishing || got.TopThreats[0].Change != "+12%" {
			t.Errorf("first threat = %+v", got.TopThreats[0])
		}
		if got.TopThreats[1].Name != categoryDDoS || got.TopThreats[1].Change != "-8%" {
			t.Errorf("second threat = %+v", got.TopThreats[1])
		}
	})
}
