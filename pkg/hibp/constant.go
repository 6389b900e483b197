package hibp

import "time"

const (
	// DefaultBaseURL is the HaveIBeenPwned site root.
	DefaultBaseURL = "https://haveibeenpwned.com"
	// DefaultTimeout bounds a single lookup request.
	DefaultTimeout = 15 * time.Second

	// legacyRetryWait is the backoff before the single alternate-UA retry
	// against the legacy unifiedsearch endpoint.
	legacyRetryWait = 1200 * time.Millisecond

	apiKeyHeader = "hibp-api-key"

	// Browser user agents improve acceptance of the legacy endpoint.
	chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"
	safariUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15"
)
