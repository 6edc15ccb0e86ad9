package redis_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	redisrepo "github.com/fleet-backend/internal/repository/redis"
)

const (
	testStream = "stream:test:locations"
	testGroup  = "test-group"
)

func newTestStreamRepository(t *testing.T) repository.StreamRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisrepo.NewStreamRepository(client, zap.NewNop())
}

func TestStreamRepository_PublishConsume(t *testing.T) {
	repo := newTestStreamRepository(t)
	ctx := context.Background()

	// Группа стартует с "$" - создаём до публикации
	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	event := domain.LocationReportEvent{
		DriverID: 42,
		Lat:      41.40,
		Lon:      2.16,
		Status:   "moving",
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var got domain.LocationReportEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &got))
	assert.Equal(t, int64(42), got.DriverID)
	assert.Equal(t, 41.40, got.Lat)
	assert.Equal(t, "moving", got.Status)
}

func TestStreamRepository_CreateConsumerGroupIdempotent(t *testing.T) {
	repo := newTestStreamRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
	// Повторное создание - не ошибка
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
}

func TestStreamRepository_ConsumeEmptyStream(t *testing.T) {
	repo := newTestStreamRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamRepository_BatchLimit(t *testing.T) {
	repo := newTestStreamRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	for i := 0; i < 5; i++ {
		event := domain.LocationReportEvent{DriverID: int64(i + 1), Lat: 41.4, Lon: 2.16}
		require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	}

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 3)
	require.NoError(t, err)
	assert.Len(t, messages, 3)

	rest, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestStreamRepository_AckMessages(t *testing.T) {
	repo := newTestStreamRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	for i := 0; i < 3; i++ {
		event := domain.LocationReportEvent{DriverID: int64(i + 1), Lat: 41.4, Lon: 2.16}
		require.NoError(t, repo.PublishToStream(ctx, testStream, event))
	}

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	require.NoError(t, repo.AckMessages(ctx, testStream, testGroup, ids))

	// Подтверждённые сообщения не приходят повторно
	again, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, again)

	// Пустой список - no-op
	assert.NoError(t, repo.AckMessages(ctx, testStream, testGroup, nil))
}
