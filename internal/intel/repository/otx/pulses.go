package otx

import (
	"context"
	"time"

	"vigil-srv/internal/intel/repository"
	"vigil-srv/internal/model"
	pkgOTX "vigil-srv/pkg/otx"
)

const fetchLimit = pkgOTX.DefaultLimit

// FetchPulses - Walks the three candidate endpoints in fixed priority
// order: subscribed feed, wildcard search, generic listing. The first
// endpoint returning pulses wins; every attempt is recorded.
func (r *implRepository) FetchPulses(ctx context.Context, modifiedSince time.Time) (repository.FeedResult, error) {
	result := repository.FeedResult{UsedAPIKey: r.hasKey}

	fetches := []func(context.Context) (*pkgOTX.FetchResult, error){
		func(ctx context.Context) (*pkgOTX.FetchResult, error) {
			return r.client.GetSubscribedPulses(ctx, modifiedSince, fetchLimit)
		},
		func(ctx context.Context) (*pkgOTX.FetchResult, error) {
			return r.client.SearchPulses(ctx, "*", fetchLimit)
		},
		func(ctx context.Context) (*pkgOTX.FetchResult, error) {
			return r.client.ListPulses(ctx, fetchLimit)
		},
	}

	for _, fetch := range fetches {
		res, err := fetch(ctx)

		attempt := model.FetchAttempt{URL: res.URL, Status: res.Status}
		if err != nil {
			attempt.Error = err.Error()
			r.l.Warnf(ctx, "intel.repository.otx.FetchPulses: endpoint %s failed: %v", res.URL, err)
		}
		result.Attempts = append(result.Attempts, attempt)

		if err != nil || len(res.Pulses) == 0 {
			continue
		}

		result.Pulses = mapPulses(res.Pulses)
		return result, nil
	}

	return result, repository.ErrFeedExhausted
}

func mapPulses(pulses []pkgOTX.Pulse) []model.Pulse {
	out := make([]model.Pulse, len(pulses))
	for i, p := range pulses {
		out[i] = model.Pulse{
			ID:             p.ID,
			Name:           p.Name,
			Tags:           p.Tags,
			IndicatorCount: len(p.Indicators),
			Created:        p.Created,
			Modified:       p.Modified,
		}
	}
	return out
}
