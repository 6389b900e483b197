package hibp

import (
	"context"
	"net/http"
	"strings"
)

// IHIBP defines the interface for breach lookups against HaveIBeenPwned.
// Implementations are safe for concurrent use.
type IHIBP interface {
	// CheckEmail looks up breaches and pastes for an email address.
	// A clean account returns an empty CheckResult, not an error.
	CheckEmail(ctx context.Context, email string) (*CheckResult, error)
}

// NewHIBP creates a new HIBP client. Returns the interface.
func NewHIBP(cfg HIBPConfig) IHIBP {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &hibpImpl{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}
