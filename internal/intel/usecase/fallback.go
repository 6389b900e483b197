package usecase

import (
	"math/rand"

	"vigil-srv/internal/intel/repository"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/util"
)

const averageResponseTimePlaceholder = "4.2h"

// fallbackOverview synthesizes an internally consistent overview when the
// feed yields nothing, so the dashboard always renders. The shape is
// deterministic; only the magnitudes are randomized.
func (uc *implUseCase) fallbackOverview(days int, feed repository.FeedResult) model.IntelOverview {
	trendDays := util.LastNDays(days)

	trends := make([]model.TrendPoint, len(trendDays))
	total := 0
	for i, d := range trendDays {
		threats := 5 + rand.Intn(16)
		total += threats
		trends[i] = model.TrendPoint{
			Date:     util.DateToStr(d),
			Threats:  threats,
			Resolved: int(float64(threats) * resolvedRatio),
		}
	}

	distribution := model.RiskDistribution{
		Critical: 2 + rand.Intn(4),
		High:     4 + rand.Intn(6),
		Medium:   8 + rand.Intn(10),
		Low:      10 + rand.Intn(12),
	}

	names := []string{
		categoryPhishing,
		categoryMalware,
		categoryUnauthorized,
		categoryExfiltration,
		categoryDDoS,
	}
	top := make([]model.TopThreat, len(names))
	count := 20 + rand.Intn(20)
	for i, name := range names {
		change := "+12%"
		if i%2 == 1 {
			change = "-8%"
		}
		top[i] = model.TopThreat{Name: name, Count: count, Change: change}
		count -= 1 + rand.Intn(4)
		if count < 1 {
			count = 1
		}
	}

	return model.IntelOverview{
		Metrics: model.IntelMetrics{
			TotalIncidents:      total,
			AverageResponseTime: averageResponseTimePlaceholder,
			ResolutionRate:      resolvedRatio * 100,
			CriticalThreats:     distribution.Critical,
		},
		ThreatTrends:     trends,
		TopThreats:       top,
		RiskDistribution: distribution,
		Raw: model.IntelRaw{
			UsedAPIKey:    feed.UsedAPIKey,
			Attempts:      feed.Attempts,
			UsingFallback: true,
		},
	}
}
