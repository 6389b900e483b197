package repository

import (
	"context"
	"time"

	"vigil-srv/internal/model"
)

// FeedResult is the outcome of walking the endpoint chain: the normalized
// pulses from the first non-empty endpoint plus every attempt made.
type FeedResult struct {
	Pulses     []model.Pulse
	Attempts   []model.FetchAttempt
	UsedAPIKey bool
}

//go:generate mockery --name FeedRepository
type FeedRepository interface {
	// FetchPulses walks the candidate endpoints in priority order and stops
	// at the first one returning pulses. Attempts are recorded either way.
	FetchPulses(ctx context.Context, modifiedSince time.Time) (FeedResult, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetOverview(ctx context.Context, days int) (model.IntelOverview, error)
	SaveOverview(ctx context.Context, days int, overview model.IntelOverview) error
}
