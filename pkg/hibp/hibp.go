package hibp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// CheckEmail looks up breaches for an email. The v3 API is used when an API
// key is configured; otherwise the legacy unifiedsearch endpoint is tried,
// with one alternate-UA retry when it rejects the first attempt.
func (h *hibpImpl) CheckEmail(ctx context.Context, email string) (*CheckResult, error) {
	if h.apiKey != "" {
		return h.checkV3(ctx, email)
	}
	return h.checkUnifiedSearch(ctx, email)
}

func (h *hibpImpl) checkV3(ctx context.Context, email string) (*CheckResult, error) {
	reqURL := fmt.Sprintf("%s/api/v3/breachedaccount/%s?truncateResponse=false&includeUnverified=true",
		h.baseURL, url.PathEscape(email))

	headers := h.baseHeaders()
	headers[apiKeyHeader] = h.apiKey

	body, resp, err := h.do(ctx, reqURL, headers)
	if err != nil {
		return nil, err
	}

	// 404 means the account is clean.
	if resp.StatusCode == http.StatusNotFound {
		return &CheckResult{Email: email, Breaches: []Breach{}, Pastes: []Paste{}}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp, body)
	}

	var raw []rawBreach
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("hibp: failed to unmarshal v3 response: %w", err)
	}

	breaches := make([]Breach, 0, len(raw))
	for _, b := range raw {
		breaches = append(breaches, mapBreach(b))
	}

	// The pastes API is deprecated on v3; kept empty for compatibility.
	return &CheckResult{Email: email, Breaches: breaches, Pastes: []Paste{}}, nil
}

func (h *hibpImpl) checkUnifiedSearch(ctx context.Context, email string) (*CheckResult, error) {
	reqURL := h.baseURL + "/unifiedsearch/" + url.PathEscape(email)

	headers := h.baseHeaders()
	headers["User-Agent"] = chromeUA
	headers["Referer"] = "https://haveibeenpwned.com/"
	headers["Origin"] = "https://haveibeenpwned.com"

	body, resp, err := h.do(ctx, reqURL, headers)
	if err != nil {
		return nil, err
	}

	// Retry once with a Safari UA and a short backoff when blocked.
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests, http.StatusServiceUnavailable:
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(legacyRetryWait):
		}
		headers["User-Agent"] = safariUA
		body, resp, err = h.do(ctx, reqURL, headers)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &CheckResult{Email: email, Breaches: []Breach{}, Pastes: []Paste{}}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp, body)
	}

	var raw unifiedSearchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("hibp: failed to unmarshal unifiedsearch response: %w", err)
	}

	breaches := make([]Breach, 0, len(raw.Breaches))
	for _, b := range raw.Breaches {
		breaches = append(breaches, mapBreach(b))
	}
	pastes := make([]Paste, 0, len(raw.Pastes))
	for _, p := range raw.Pastes {
		pastes = append(pastes, Paste{
			Source:     defaultString(p.Source, "Unknown"),
			ID:         p.ID,
			Title:      p.Title,
			Date:       p.Date,
			EmailCount: p.EmailCount,
		})
	}

	return &CheckResult{Email: email, Breaches: breaches, Pastes: pastes}, nil
}

func (h *hibpImpl) do(ctx context.Context, reqURL string, headers map[string]string) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("hibp: failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("hibp: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("hibp: failed to read response body: %w", err)
	}
	return body, resp, nil
}

func (h *hibpImpl) baseHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      chromeUA,
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.8",
	}
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	msg := http.StatusText(resp.StatusCode)
	if len(body) > 0 && len(body) <= 512 {
		msg = string(body)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		RetryAfter: resp.Header.Get("Retry-After"),
		Message:    msg,
	}
}

func mapBreach(b rawBreach) Breach {
	dataClasses := b.DataClasses
	if dataClasses == nil {
		dataClasses = []string{}
	}
	return Breach{
		Name:        defaultString(b.Name, "Unknown"),
		Title:       defaultString(b.Title, "Unknown"),
		Domain:      defaultString(b.Domain, "Unknown"),
		BreachDate:  b.BreachDate,
		AddedDate:   b.AddedDate,
		PwnCount:    b.PwnCount,
		Description: b.Description,
		DataClasses: dataClasses,
		IsVerified:  b.IsVerified,
		IsSensitive: b.IsSensitive,
		LogoPath:    b.LogoPath,
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
