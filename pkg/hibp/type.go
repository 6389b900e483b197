package hibp

import (
	"fmt"
	"net/http"
)

// HIBPConfig holds the configuration for the HIBP client.
// APIKey is optional; without it lookups go through the legacy
// unifiedsearch endpoint instead of the v3 API.
type HIBPConfig struct {
	APIKey  string
	BaseURL string
}

// hibpImpl implements IHIBP.
type hibpImpl struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Breach is a single breach record with fields normalized from the HIBP shape.
type Breach struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Domain      string   `json:"domain"`
	BreachDate  string   `json:"breachDate"`
	AddedDate   string   `json:"addedDate"`
	PwnCount    int64    `json:"pwnCount"`
	Description string   `json:"description"`
	DataClasses []string `json:"dataClasses"`
	IsVerified  bool     `json:"isVerified"`
	IsSensitive bool     `json:"isSensitive"`
	LogoPath    string   `json:"logoPath"`
}

// Paste is a single paste record from the legacy endpoint.
type Paste struct {
	Source     string `json:"source"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	EmailCount int    `json:"emailCount"`
}

// CheckResult is the outcome of a successful lookup. A clean account
// yields empty slices, not an error.
type CheckResult struct {
	Email    string   `json:"email"`
	Breaches []Breach `json:"breaches"`
	Pastes   []Paste  `json:"pastes"`
}

// APIError is returned when HIBP responds with a non-success status.
// RetryAfter carries the Retry-After header value when present.
type APIError struct {
	StatusCode int
	RetryAfter string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hibp: status %d: %s", e.StatusCode, e.Message)
}

// rawBreach matches the PascalCase field names of the HIBP API.
type rawBreach struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	Domain      string   `json:"Domain"`
	BreachDate  string   `json:"BreachDate"`
	AddedDate   string   `json:"AddedDate"`
	PwnCount    int64    `json:"PwnCount"`
	Description string   `json:"Description"`
	DataClasses []string `json:"DataClasses"`
	IsVerified  bool     `json:"IsVerified"`
	IsSensitive bool     `json:"IsSensitive"`
	LogoPath    string   `json:"LogoPath"`
}

type rawPaste struct {
	Source     string `json:"Source"`
	ID         string `json:"Id"`
	Title      string `json:"Title"`
	Date       string `json:"Date"`
	EmailCount int    `json:"EmailCount"`
}

type unifiedSearchResponse struct {
	Breaches []rawBreach `json:"Breaches"`
	Pastes   []rawPaste  `json:"Pastes"`
}
