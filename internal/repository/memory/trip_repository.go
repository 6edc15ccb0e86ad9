package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type tripRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries []domain.TripHistoryEntry
}

// NewTripHistoryRepository создает историю маршрутов в памяти
func NewTripHistoryRepository() repository.TripHistoryRepository {
	return &tripRepository{}
}

func (r *tripRepository) Append(_ context.Context, entry *domain.TripHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *tripRepository) ListByDriver(_ context.Context, driverID int64, limit int) ([]domain.TripHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.TripHistoryEntry
	for i := len(r.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if r.entries[i].DriverID == driverID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}
