package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"vigil-srv/internal/intel"
	"vigil-srv/internal/intel/repository"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/util"
)

// resolvedRatio synthesizes per-day "resolved" counts from threat counts.
// A visualization approximation, not a real resolution measurement.
const resolvedRatio = 0.7

// GetOverview - Aggregates the feed into the dashboard overview
func (uc *implUseCase) GetOverview(ctx context.Context, sc model.Scope, input intel.OverviewInput) (model.IntelOverview, error) {
	days := input.Days
	if days == 0 {
		days = intel.DefaultDays
	}
	if days < 1 || days > intel.MaxDays {
		return model.IntelOverview{}, intel.ErrInvalidDays
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetOverview(ctx, days)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "intel.usecase.GetOverview: cache read failed: %v", err)
		}
	}

	windowStart := util.StartOfDay(util.Now().AddDate(0, 0, -(days - 1)))

	feed, err := uc.feed.FetchPulses(ctx, windowStart)
	if err != nil && !errors.Is(err, repository.ErrFeedExhausted) {
		uc.l.Errorf(ctx, "intel.usecase.GetOverview: fetch failed: %v", err)
		return model.IntelOverview{}, err
	}

	pulses := filterWindow(feed.Pulses, windowStart)

	var overview model.IntelOverview
	if len(pulses) == 0 {
		overview = uc.fallbackOverview(days, feed)
	} else {
		overview = uc.buildOverview(days, pulses, feed)
	}

	if uc.cache != nil {
		if err := uc.cache.SaveOverview(ctx, days, overview); err != nil {
			uc.l.Warnf(ctx, "intel.usecase.GetOverview: cache write failed: %v", err)
		}
	}

	return overview, nil
}

// filterWindow keeps pulses modified or created inside the window.
// Pulses without a parseable timestamp are retained, not dropped.
func filterWindow(pulses []model.Pulse, windowStart time.Time) []model.Pulse {
	kept := []model.Pulse{}
	for _, p := range pulses {
		t, ok := pulseTime(p)
		if !ok || !t.Before(windowStart) {
			kept = append(kept, p)
		}
	}
	return kept
}

// buildOverview aggregates real pulses into the overview shape.
func (uc *implUseCase) buildOverview(days int, pulses []model.Pulse, feed repository.FeedResult) model.IntelOverview {
	trendDays := util.LastNDays(days)
	threatsPerDay := make(map[string]int, days)

	var distribution model.RiskDistribution
	categoryCounts := map[string]int{}
	categoryOrder := []string{}
	totalIndicators := 0

	today := util.DateToStr(util.StartOfDay(util.Now()))

	for i := range pulses {
		p := &pulses[i]
		p.Severity = deriveSeverity(p.IndicatorCount, p.Tags)
		p.Category = deriveCategory(p.Tags)

		switch p.Severity {
		case model.ThreatLevelCritical:
			distribution.Critical++
		case model.ThreatLevelHigh:
			distribution.High++
		case model.ThreatLevelMedium:
			distribution.Medium++
		default:
			distribution.Low++
		}

		if _, seen := categoryCounts[p.Category]; !seen {
			categoryOrder = append(categoryOrder, p.Category)
		}
		categoryCounts[p.Category]++
		totalIndicators += p.IndicatorCount

		// Timestampless pulses land on today so trend totals stay
		// consistent with the incident count.
		day := today
		if t, ok := pulseTime(*p); ok {
			day = util.DateToStr(t.In(util.GetDefaultTimezone()))
		}
		threatsPerDay[day]++
	}

	trends := make([]model.TrendPoint, len(trendDays))
	for i, d := range trendDays {
		date := util.DateToStr(d)
		threats := threatsPerDay[date]
		trends[i] = model.TrendPoint{
			Date:     date,
			Threats:  threats,
			Resolved: int(float64(threats) * resolvedRatio),
		}
	}

	return model.IntelOverview{
		Metrics: model.IntelMetrics{
			TotalIncidents:      len(pulses),
			AverageResponseTime: averageResponseTimePlaceholder,
			ResolutionRate:      resolvedRatio * 100,
			CriticalThreats:     distribution.Critical,
		},
		ThreatTrends:     trends,
		TopThreats:       topCategories(categoryCounts, categoryOrder),
		RiskDistribution: distribution,
		Raw: model.IntelRaw{
			Pulses:        len(pulses),
			Indicators:    totalIndicators,
			UsedAPIKey:    feed.UsedAPIKey,
			Attempts:      feed.Attempts,
			UsingFallback: false,
		},
	}
}

// topCategories ranks categories by count, first-seen order breaking ties,
// and annotates the top five with the alternating change placeholder.
func topCategories(counts map[string]int, order []string) []model.TopThreat {
	ranked := make([]model.TopThreat, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, model.TopThreat{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	for i := range ranked {
		if i%2 == 0 {
			ranked[i].Change = "+12%"
		} else {
			ranked[i].Change = "-8%"
		}
	}
	return ranked
}
