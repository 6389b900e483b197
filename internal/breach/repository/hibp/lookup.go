package hibp

import (
	"context"

	"vigil-srv/internal/model"
)

// Lookup - Fetches and normalizes breach and paste records
func (r *implRepository) Lookup(ctx context.Context, email string) ([]model.BreachRecord, []model.PasteRecord, error) {
	result, err := r.client.CheckEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	breaches := make([]model.BreachRecord, len(result.Breaches))
	for i, b := range result.Breaches {
		breaches[i] = model.BreachRecord{
			Name:        b.Name,
			Title:       b.Title,
			Domain:      b.Domain,
			BreachDate:  b.BreachDate,
			AddedDate:   b.AddedDate,
			PwnCount:    b.PwnCount,
			Description: b.Description,
			DataClasses: b.DataClasses,
			IsVerified:  b.IsVerified,
			IsSensitive: b.IsSensitive,
			LogoPath:    b.LogoPath,
		}
	}

	pastes := make([]model.PasteRecord, len(result.Pastes))
	for i, p := range result.Pastes {
		pastes[i] = model.PasteRecord{
			Source:     p.Source,
			ID:         p.ID,
			Title:      p.Title,
			Date:       p.Date,
			EmailCount: p.EmailCount,
		}
	}

	return breaches, pastes, nil
}
