package breach

import (
	"context"

	"vigil-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CheckEmail looks up breach and paste exposure for an email and scores
	// it. Results are cached by hashed address; a clean account is a valid
	// zero-score result, not an error.
	CheckEmail(ctx context.Context, sc model.Scope, input CheckInput) (model.BreachCheck, error)
}
