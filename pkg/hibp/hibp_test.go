package hibp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Captured v3-shaped payload: one fully populated record and one sparse
// record missing the optional identity fields and data classes.
const v3Payload = `[
	{
		"Name": "Adobe",
		"Title": "Adobe",
		"Domain": "adobe.com",
		"BreachDate": "2013-10-04",
		"AddedDate": "2013-12-04T00:00:00Z",
		"PwnCount": 152445165,
		"Description": "In October 2013, 153 million Adobe accounts were breached.",
		"DataClasses": ["Email addresses", "Password hints", "Passwords", "Usernames"],
		"IsVerified": true,
		"IsSensitive": false,
		"LogoPath": "https://haveibeenpwned.com/Content/Images/PwnedLogos/Adobe.png"
	},
	{
		"BreachDate": "2020-01-01",
		"PwnCount": 1000
	}
]`

// Captured unifiedsearch-shaped payload with a paste missing its source.
const unifiedSearchPayload = `{
	"Breaches": [
		{
			"Name": "LinkedIn",
			"Title": "LinkedIn",
			"Domain": "linkedin.com",
			"BreachDate": "2012-05-05",
			"PwnCount": 164611595,
			"DataClasses": ["Email addresses", "Passwords"],
			"IsVerified": true,
			"IsSensitive": false
		}
	],
	"Pastes": [
		{
			"Source": "",
			"Id": "abc123",
			"Title": "dump.txt",
			"Date": "2014-03-07T01:00:00Z",
			"EmailCount": 139
		}
	]
}`

func newTestClient(serverURL, apiKey string) IHIBP {
	return NewHIBP(HIBPConfig{APIKey: apiKey, BaseURL: serverURL})
}

func TestCheckEmailV3(t *testing.T) {
	ctx := context.Background()

	t.Run("maps captured payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v3/breachedaccount/user@example.com" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if got := r.URL.Query().Get("truncateResponse"); got != "false" {
				t.Errorf("truncateResponse = %q, want false", got)
			}
			if got := r.URL.Query().Get("includeUnverified"); got != "true" {
				t.Errorf("includeUnverified = %q, want true", got)
			}
			if got := r.Header.Get(apiKeyHeader); got != "test-key" {
				t.Errorf("%s = %q, want test-key", apiKeyHeader, got)
			}
			w.Write([]byte(v3Payload))
		}))
		defer srv.Close()

		res, err := newTestClient(srv.URL, "test-key").CheckEmail(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("CheckEmail returned error: %v", err)
		}
		if len(res.Breaches) != 2 {
			t.Fatalf("got %d breaches, want 2", len(res.Breaches))
		}

		adobe := res.Breaches[0]
		if adobe.Name != "Adobe" || adobe.Title != "Adobe" || adobe.Domain != "adobe.com" {
			t.Errorf("identity fields = %q/%q/%q", adobe.Name, adobe.Title, adobe.Domain)
		}
		if adobe.BreachDate != "2013-10-04" || adobe.AddedDate != "2013-12-04T00:00:00Z" {
			t.Errorf("dates = %q/%q", adobe.BreachDate, adobe.AddedDate)
		}
		if adobe.PwnCount != 152445165 {
			t.Errorf("PwnCount = %d, want 152445165", adobe.PwnCount)
		}
		if len(adobe.DataClasses) != 4 || adobe.DataClasses[2] != "Passwords" {
			t.Errorf("DataClasses = %v", adobe.DataClasses)
		}
		if !adobe.IsVerified || adobe.IsSensitive {
			t.Errorf("flags = verified %v, sensitive %v", adobe.IsVerified, adobe.IsSensitive)
		}

		sparse := res.Breaches[1]
		if sparse.Name != "Unknown" || sparse.Title != "Unknown" || sparse.Domain != "Unknown" {
			t.Errorf("sparse identity fields = %q/%q/%q, want Unknown substitutions",
				sparse.Name, sparse.Title, sparse.Domain)
		}
		if sparse.DataClasses == nil {
			t.Error("sparse DataClasses is nil, want empty slice")
		}
		if len(sparse.DataClasses) != 0 {
			t.Errorf("sparse DataClasses = %v, want empty", sparse.DataClasses)
		}

		if res.Pastes == nil || len(res.Pastes) != 0 {
			t.Errorf("v3 pastes = %v, want empty non-nil slice", res.Pastes)
		}
	})

	t.Run("clean account on 404", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		res, err := newTestClient(srv.URL, "test-key").CheckEmail(ctx, "clean@example.com")
		if err != nil {
			t.Fatalf("CheckEmail returned error: %v", err)
		}
		if res.Breaches == nil || len(res.Breaches) != 0 {
			t.Errorf("breaches = %v, want empty non-nil slice", res.Breaches)
		}
		if res.Pastes == nil || len(res.Pastes) != 0 {
			t.Errorf("pastes = %v, want empty non-nil slice", res.Pastes)
		}
	})

	t.Run("surfaces retry-after on rate limit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "12")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, "test-key").CheckEmail(ctx, "user@example.com")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
		}
		if apiErr.RetryAfter != "12" {
			t.Errorf("RetryAfter = %q, want 12", apiErr.RetryAfter)
		}
	})
}

func TestCheckEmailUnifiedSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("maps breaches and pastes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/unifiedsearch/user@example.com" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Write([]byte(unifiedSearchPayload))
		}))
		defer srv.Close()

		res, err := newTestClient(srv.URL, "").CheckEmail(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("CheckEmail returned error: %v", err)
		}

		if len(res.Breaches) != 1 {
			t.Fatalf("got %d breaches, want 1", len(res.Breaches))
		}
		b := res.Breaches[0]
		if b.Name != "LinkedIn" || b.PwnCount != 164611595 || !b.IsVerified {
			t.Errorf("breach = %+v", b)
		}
		if len(b.DataClasses) != 2 || b.DataClasses[1] != "Passwords" {
			t.Errorf("DataClasses = %v", b.DataClasses)
		}

		if len(res.Pastes) != 1 {
			t.Fatalf("got %d pastes, want 1", len(res.Pastes))
		}
		p := res.Pastes[0]
		if p.Source != "Unknown" {
			t.Errorf("empty paste source = %q, want Unknown substitution", p.Source)
		}
		if p.ID != "abc123" || p.Title != "dump.txt" || p.EmailCount != 139 {
			t.Errorf("paste = %+v", p)
		}
	})

	t.Run("retries with alternate UA when blocked", func(t *testing.T) {
		var agents []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents = append(agents, r.Header.Get("User-Agent"))
			if len(agents) == 1 {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Write([]byte(unifiedSearchPayload))
		}))
		defer srv.Close()

		res, err := newTestClient(srv.URL, "").CheckEmail(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("CheckEmail returned error: %v", err)
		}
		if len(agents) != 2 {
			t.Fatalf("got %d attempts, want 2", len(agents))
		}
		if agents[0] != chromeUA {
			t.Errorf("first attempt UA = %q, want chrome", agents[0])
		}
		if agents[1] != safariUA {
			t.Errorf("retry UA = %q, want safari", agents[1])
		}
		if len(res.Breaches) != 1 || len(res.Pastes) != 1 {
			t.Errorf("retry result = %d breaches, %d pastes", len(res.Breaches), len(res.Pastes))
		}
	})

	t.Run("fails after exhausted retry", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, "").CheckEmail(ctx, "user@example.com")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if attempts != 2 {
			t.Errorf("got %d attempts, want 2", attempts)
		}
		if apiErr.RetryAfter != "30" {
			t.Errorf("RetryAfter = %q, want 30", apiErr.RetryAfter)
		}
	})
}
