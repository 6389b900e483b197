package otx

import "time"

const (
	// DefaultBaseURL is the AlienVault OTX API base URL.
	DefaultBaseURL = "https://otx.alienvault.com/api/v1"
	// DefaultTimeout bounds a single endpoint call.
	DefaultTimeout = 10 * time.Second
	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 50

	apiKeyHeader = "X-OTX-API-KEY"
)
