package repositories

import (
	"context"
	"time"
)

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	// DeletePrefix removes every key matching "prefix*". The scan and the
	// delete are separate operations, so concurrent writers may race it.
	DeletePrefix(ctx context.Context, prefix string) error
}
