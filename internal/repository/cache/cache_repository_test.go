package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepository(t *testing.T) (*cacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &cacheRepository{client: client, logger: zap.NewNop()}, mr
}

func TestCacheRepository_GetSet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		val, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "route:driving:a:b", []byte(`{"code":"Ok"}`), time.Minute))

		val, err := repo.Get(ctx, "route:driving:a:b")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"code":"Ok"}`), val)
	})
}

func TestCacheRepository_TTL(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "ephemeral", []byte("x"), time.Minute))

	// Истёкший TTL - снова промах
	mr.FastForward(2 * time.Minute)

	val, err := repo.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Delete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, repo.Delete(ctx, "key"))

	val, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Exists(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))

	exists, err = repo.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}
