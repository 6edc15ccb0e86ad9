package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовый кеш с TTL
type CacheRepository interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
