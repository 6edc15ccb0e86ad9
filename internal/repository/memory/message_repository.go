package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type messageRepository struct {
	mu       sync.Mutex
	seq      int64
	inboxes  map[int64][]*domain.Message
	inboxSeq map[*domain.Message]int64 // порядок вставки для tie-break
}

// NewMessageRepository создает инбокс в памяти. Критическая секция
// сериализует read-and-mark: сообщение выдаётся непрочитанным ровно
// одному из конкурентных FetchUnread.
func NewMessageRepository() repository.MessageRepository {
	return &messageRepository{
		inboxes:  make(map[int64][]*domain.Message),
		inboxSeq: make(map[*domain.Message]int64),
	}
}

func (r *messageRepository) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.CreatedAt = time.Now().UTC()
	msg.Read = false

	stored := *msg
	r.seq++
	r.inboxes[msg.DriverID] = append(r.inboxes[msg.DriverID], &stored)
	r.inboxSeq[&stored] = r.seq

	return nil
}

func (r *messageRepository) FetchUnread(_ context.Context, driverID int64) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var claimed []*domain.Message
	for _, msg := range r.inboxes[driverID] {
		if !msg.Read {
			msg.Read = true // монотонный переход, отката нет
			claimed = append(claimed, msg)
		}
	}

	sort.Slice(claimed, func(i, j int) bool {
		if claimed[i].CreatedAt.Equal(claimed[j].CreatedAt) {
			return r.inboxSeq[claimed[i]] < r.inboxSeq[claimed[j]]
		}
		return claimed[i].CreatedAt.Before(claimed[j].CreatedAt)
	})

	result := make([]domain.Message, 0, len(claimed))
	for _, msg := range claimed {
		result = append(result, *msg)
	}
	return result, nil
}
