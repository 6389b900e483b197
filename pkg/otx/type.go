package otx

import pkghttp "vigil-srv/pkg/http"

// OTXConfig holds the configuration for the OTX client.
type OTXConfig struct {
	APIKey  string
	BaseURL string
}

// otxImpl implements IOTX against the AlienVault OTX API.
type otxImpl struct {
	apiKey     string
	baseURL    string
	httpClient pkghttp.IClient
}

// Pulse is a threat-intel pulse as returned by the OTX API.
type Pulse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Created     string      `json:"created"`
	Modified    string      `json:"modified"`
	Adversary   string      `json:"adversary"`
	TLP         string      `json:"tlp"`
	Tags        []string    `json:"tags"`
	Indicators  []Indicator `json:"indicators"`
}

// Indicator is a single IOC attached to a pulse.
type Indicator struct {
	ID        int64  `json:"id"`
	Indicator string `json:"indicator"`
	Type      string `json:"type"`
}

// FetchResult carries the pulses from one endpoint call together with the
// request URL and status, so callers can record the attempt either way.
type FetchResult struct {
	URL    string
	Status int
	Pulses []Pulse
}

type pulseListResponse struct {
	Count   int     `json:"count"`
	Next    string  `json:"next"`
	Results []Pulse `json:"results"`
}
