package repository

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name LookupRepository
type LookupRepository interface {
	// Lookup fetches the raw breach and paste records for an email.
	Lookup(ctx context.Context, email string) ([]model.BreachRecord, []model.PasteRecord, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetCheck(ctx context.Context, emailHash string) (model.BreachCheck, error)
	SaveCheck(ctx context.Context, emailHash string, check model.BreachCheck) error
}
