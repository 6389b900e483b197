package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vigil-srv/internal/breach/repository"
	"vigil-srv/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

const checkCacheTTL = 1 * time.Hour

// GetCheck retrieves a cached breach check by hashed email.
func (r *implCacheRepository) GetCheck(ctx context.Context, emailHash string) (model.BreachCheck, error) {
	data, err := r.redis.Get(ctx, checkCacheKey(emailHash))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.BreachCheck{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "breach.repository.redis.GetCheck: Failed to get check from cache: %v", err)
		return model.BreachCheck{}, err
	}

	var check model.BreachCheck
	if err := json.Unmarshal([]byte(data), &check); err != nil {
		r.l.Errorf(ctx, "breach.repository.redis.GetCheck: Failed to unmarshal check: %v", err)
		return model.BreachCheck{}, err
	}

	return check, nil
}

// SaveCheck stores a breach check with a fixed TTL.
func (r *implCacheRepository) SaveCheck(ctx context.Context, emailHash string, check model.BreachCheck) error {
	data, err := json.Marshal(check)
	if err != nil {
		r.l.Errorf(ctx, "breach.repository.redis.SaveCheck: Failed to marshal check: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, checkCacheKey(emailHash), string(data), checkCacheTTL); err != nil {
		r.l.Errorf(ctx, "breach.repository.redis.SaveCheck: Failed to set check in cache: %v", err)
		return err
	}
	return nil
}

func checkCacheKey(emailHash string) string {
	return fmt.Sprintf("breach:check:%s", emailHash)
}
