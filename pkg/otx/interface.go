package otx

import (
	"context"
	"strings"
	"time"

	pkghttp "vigil-srv/pkg/http"
)

// IOTX defines the interface for retrieving threat-intel pulses.
// The API key is optional; without it some endpoints respond with
// reduced data rather than failing.
// Implementations are safe for concurrent use.
type IOTX interface {
	GetSubscribedPulses(ctx context.Context, modifiedSince time.Time, limit int) (*FetchResult, error)
	SearchPulses(ctx context.Context, query string, limit int) (*FetchResult, error)
	ListPulses(ctx context.Context, limit int) (*FetchResult, error)
}

// NewOTX creates a new OTX client. Returns the interface.
func NewOTX(cfg OTXConfig) IOTX {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &otxImpl{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: DefaultTimeout,
			Retries: 0,
		}),
	}
}
