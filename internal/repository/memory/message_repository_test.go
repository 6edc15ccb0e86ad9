package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/repository/memory"
)

func TestMessageRepository_FetchUnread(t *testing.T) {
	ctx := context.Background()

	t.Run("empty inbox yields empty list", func(t *testing.T) {
		repo := memory.NewMessageRepository()

		messages, err := repo.FetchUnread(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("fetch marks messages read", func(t *testing.T) {
		repo := memory.NewMessageRepository()

		for i := 0; i < 3; i++ {
			err := repo.Create(ctx, &domain.Message{
				ID:       uuid.New(),
				DriverID: 7,
				Body:     fmt.Sprintf("message %d", i),
			})
			require.NoError(t, err)
		}

		first, err := repo.FetchUnread(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, first, 3)

		// Повторная выборка пуста: сообщения уже отмечены прочитанными
		second, err := repo.FetchUnread(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("messages arrive in send order", func(t *testing.T) {
		repo := memory.NewMessageRepository()

		var ids []uuid.UUID
		for i := 0; i < 10; i++ {
			msg := &domain.Message{ID: uuid.New(), DriverID: 1, Body: fmt.Sprintf("m%d", i)}
			require.NoError(t, repo.Create(ctx, msg))
			ids = append(ids, msg.ID)
		}

		messages, err := repo.FetchUnread(ctx, 1)
		require.NoError(t, err)
		require.Len(t, messages, 10)
		for i, msg := range messages {
			assert.Equal(t, ids[i], msg.ID)
		}
	})

	t.Run("inboxes are isolated per driver", func(t *testing.T) {
		repo := memory.NewMessageRepository()

		require.NoError(t, repo.Create(ctx, &domain.Message{ID: uuid.New(), DriverID: 1, Body: "for one"}))
		require.NoError(t, repo.Create(ctx, &domain.Message{ID: uuid.New(), DriverID: 2, Body: "for two"}))

		messages, err := repo.FetchUnread(ctx, 1)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "for one", messages[0].Body)

		messages, err = repo.FetchUnread(ctx, 2)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "for two", messages[0].Body)
	})
}

// Каждое сообщение должно попасть ровно в одну из конкурентных выборок:
// ни потерь, ни дублей.
func TestMessageRepository_ConcurrentFetchExactlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMessageRepository()

	const (
		driverID    = int64(42)
		numMessages = 200
		numFetchers = 8
	)

	sent := make(map[uuid.UUID]bool, numMessages)
	for i := 0; i < numMessages; i++ {
		msg := &domain.Message{ID: uuid.New(), DriverID: driverID, Body: fmt.Sprintf("m%d", i)}
		require.NoError(t, repo.Create(ctx, msg))
		sent[msg.ID] = true
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		fetched []domain.Message
	)

	for i := 0; i < numFetchers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			messages, err := repo.FetchUnread(ctx, driverID)
			assert.NoError(t, err)

			mu.Lock()
			fetched = append(fetched, messages...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Все сообщения доставлены, каждое ровно один раз
	require.Len(t, fetched, numMessages)
	seen := make(map[uuid.UUID]bool, numMessages)
	for _, msg := range fetched {
		assert.False(t, seen[msg.ID], "message %s delivered twice", msg.ID)
		assert.True(t, sent[msg.ID], "unexpected message %s", msg.ID)
		seen[msg.ID] = true
	}
}
