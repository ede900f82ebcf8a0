package cache

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"krishi-sathi/app/server/constants"
	"time"
)

// Revocations 是注销后的令牌吊销列表，键在令牌自然过期后由 redis 清理
type Revocations struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRevocations(rdb *redis.Client) *Revocations {
	return &Revocations{rdb: rdb, now: time.Now}
}

// Revoke 吊销令牌直到 expires ，已过期的令牌无需记录
func (r *Revocations) Revoke(ctx context.Context, tokenID string, expires time.Time) error {
	if tokenID == "" {
		return errors.New("token id is empty")
	}

	ttl := expires.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

func (r *Revocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := r.rdb.Exists(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token %s: %w", tokenID, err)
	}
	return n > 0, nil
}
