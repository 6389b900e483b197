package intel

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetOverview aggregates the threat-intel feed into the dashboard
	// overview for a trailing day window. The result is cached; a feed
	// outage yields synthetic data flagged via Raw.UsingFallback.
	GetOverview(ctx context.Context, sc model.Scope, input OverviewInput) (model.IntelOverview, error)
}
