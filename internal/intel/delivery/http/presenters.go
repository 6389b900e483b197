package http

import (
	"vigil-srv/internal/intel"
	"vigil-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type overviewReq struct {
	Days int `form:"days"`
}

func (r overviewReq) toInput() intel.OverviewInput {
	return intel.OverviewInput{Days: r.Days}
}

// =====================================================
// Response DTOs
// =====================================================

type metricsResp struct {
	TotalIncidents      int     `json:"total_incidents"`
	AverageResponseTime string  `json:"average_response_time"`
	ResolutionRate      float64 `json:"resolution_rate"`
	CriticalThreats     int     `json:"critical_threats"`
}

type trendPointResp struct {
	Date     string `json:"date"`
	Threats  int    `json:"threats"`
	Resolved int    `json:"resolved"`
}

type topThreatResp struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Change string `json:"change"`
}

type riskDistributionResp struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type fetchAttemptResp struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

type rawResp struct {
	Pulses        int                `json:"pulses"`
	Indicators    int                `json:"indicators"`
	UsedAPIKey    bool               `json:"used_api_key"`
	Attempts      []fetchAttemptResp `json:"attempts"`
	UsingFallback bool               `json:"using_fallback"`
}

type overviewResp struct {
	Metrics          metricsResp          `json:"metrics"`
	ThreatTrends     []trendPointResp     `json:"threat_trends"`
	TopThreats       []topThreatResp      `json:"top_threats"`
	RiskDistribution riskDistributionResp `json:"risk_distribution"`
	Raw              rawResp              `json:"raw"`
}

func (h *handler) newOverviewResp(o model.IntelOverview) overviewResp {
	resp := overviewResp{
		Metrics: metricsResp{
			TotalIncidents:      o.Metrics.TotalIncidents,
			AverageResponseTime: o.Metrics.AverageResponseTime,
			ResolutionRate:      o.Metrics.ResolutionRate,
			CriticalThreats:     o.Metrics.CriticalThreats,
		},
		RiskDistribution: riskDistributionResp{
			Critical: o.RiskDistribution.Critical,
			High:     o.RiskDistribution.High,
			Medium:   o.RiskDistribution.Medium,
			Low:      o.RiskDistribution.Low,
		},
		Raw: rawResp{
			Pulses:        o.Raw.Pulses,
			Indicators:    o.Raw.Indicators,
			UsedAPIKey:    o.Raw.UsedAPIKey,
			UsingFallback: o.Raw.UsingFallback,
		},
	}

	resp.ThreatTrends = make([]trendPointResp, len(o.ThreatTrends))
	for i, p := range o.ThreatTrends {
		resp.ThreatTrends[i] = trendPointResp{Date: p.Date, Threats: p.Threats, Resolved: p.Resolved}
	}

	resp.TopThreats = make([]topThreatResp, len(o.TopThreats))
	for i, t := range o.TopThreats {
		resp.TopThreats[i] = topThreatResp{Name: t.Name, Count: t.Count, Change: t.Change}
	}

	resp.Raw.Attempts = make([]fetchAttemptResp, len(o.Raw.Attempts))
	for i, a := range o.Raw.Attempts {
		resp.Raw.Attempts[i] = fetchAttemptResp{URL: a.URL, Status: a.Status, Error: a.Error}
	}

	return resp
}
