package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vigil-srv/internal/intel/repository"
	"vigil-srv/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

const overviewCacheTTL = 10 * time.Minute

// GetOverview retrieves a cached overview for a day window.
func (r *implCacheRepository) GetOverview(ctx context.Context, days int) (model.IntelOverview, error) {
	data, err := r.redis.Get(ctx, overviewCacheKey(days))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.IntelOverview{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "intel.repository.redis.GetOverview: Failed to get overview from cache: %v", err)
		return model.IntelOverview{}, err
	}

	var overview model.IntelOverview
	if err := json.Unmarshal([]byte(data), &overview); err != nil {
		r.l.Errorf(ctx, "intel.repository.redis.GetOverview: Failed to unmarshal overview: %v", err)
		return model.IntelOverview{}, err
	}

	return overview, nil
}

// SaveOverview stores an overview with a fixed TTL.
func (r *implCacheRepository) SaveOverview(ctx context.Context, days int, overview model.IntelOverview) error {
	data, err := json.Marshal(overview)
	if err != nil {
		r.l.Errorf(ctx, "intel.repository.redis.SaveOverview: Failed to marshal overview: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, overviewCacheKey(days), string(data), overviewCacheTTL); err != nil {
		r.l.Errorf(ctx, "intel.repository.redis.SaveOverview: Failed to set overview in cache: %v", err)
		return err
	}
	return nil
}

func overviewCacheKey(days int) string {
	return fmt.Sprintf("intel:overview:%d", days)
}
