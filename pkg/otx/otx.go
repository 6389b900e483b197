package otx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GetSubscribedPulses retrieves pulses from the subscribed feed.
func (o *otxImpl) GetSubscribedPulses(ctx context.Context, modifiedSince time.Time, limit int) (*FetchResult, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", normalizeLimit(limit)))
	if !modifiedSince.IsZero() {
		params.Set("modified_since", modifiedSince.UTC().Format(time.RFC3339))
	}
	return o.fetch(ctx, o.baseURL+"/pulses/subscribed?"+params.Encode())
}

// SearchPulses retrieves pulses matching a search query.
func (o *otxImpl) SearchPulses(ctx context.Context, query string, limit int) (*FetchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", normalizeLimit(limit)))
	return o.fetch(ctx, o.baseURL+"/search/pulses?"+params.Encode())
}

// ListPulses retrieves pulses from the generic activity listing.
func (o *otxImpl) ListPulses(ctx context.Context, limit int) (*FetchResult, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", normalizeLimit(limit)))
	return o.fetch(ctx, o.baseURL+"/pulses/activity?"+params.Encode())
}

// fetch always returns a non-nil result carrying the URL and status,
// even on failure, so callers can record the attempt.
func (o *otxImpl) fetch(ctx context.Context, reqURL string) (*FetchResult, error) {
	result := &FetchResult{URL: reqURL}

	headers := map[string]string{}
	if o.apiKey != "" {
		headers[apiKeyHeader] = o.apiKey
	}

	body, statusCode, err := o.httpClient.Get(ctx, reqURL, headers)
	result.Status = statusCode
	if err != nil {
		return result, fmt.Errorf("otx: request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return result, fmt.Errorf("otx: endpoint returned status %d", statusCode)
	}

	var resp pulseListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return result, fmt.Errorf("otx: failed to unmarshal response: %w", err)
	}

	result.Pulses = resp.Results
	return result, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
