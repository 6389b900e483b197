package model

// Pulse is a normalized threat-intel record. Category and Severity are
// derived during aggregation, never taken from the feed.
type Pulse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Tags           []string    `json:"tags"`
	IndicatorCount int         `json:"indicatorCount"`
	Created        string      `json:"created"`
	Modified       string      `json:"modified"`
	Category       string      `json:"category,omitempty"`
	Severity       ThreatLevel `json:"severity,omitempty"`
}

// FetchAttempt records one endpoint try in the fallback chain,
// kept regardless of outcome.
type FetchAttempt struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// IntelMetrics are the headline numbers of an overview.
type IntelMetrics struct {
	TotalIncidents      int     `json:"totalIncidents"`
	AverageResponseTime string  `json:"averageResponseTime"`
	ResolutionRate      float64 `json:"resolutionRate"`
	CriticalThreats     int     `json:"criticalThreats"`
}

// TrendPoint is one calendar day in the threat trend.
type TrendPoint struct {
	Date     string `json:"date"`
	Threats  int    `json:"threats"`
	Resolved int    `json:"resolved"`
}

// TopThreat is one of the leading categories with a change indicator.
type TopThreat struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Change string `json:"change"`
}

// RiskDistribution counts pulses per severity tier.
type RiskDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// IntelRaw carries provenance alongside the aggregates. UsingFallback is
// true whenever no real pulse satisfied the requested time window.
type IntelRaw struct {
	Pulses        int            `json:"pulses"`
	Indicators    int            `json:"indicators"`
	UsedAPIKey    bool           `json:"usedApiKey"`
	Attempts      []FetchAttempt `json:"attempts"`
	UsingFallback bool           `json:"usingFallback"`
}

// IntelOverview is the aggregated dashboard shape. Fallback and real data
// share it; consumers branch only on Raw.UsingFallback.
type IntelOverview struct {
	Metrics          IntelMetrics     `json:"metrics"`
	ThreatTrends     []TrendPoint     `json:"threatTrends"`
	TopThreats       []TopThreat      `json:"topThreats"`
	RiskDistribution RiskDistribution `json:"riskDistribution"`
	Raw              IntelRaw         `json:"raw"`
}
