package memory

import (
	"context"
	"sync"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type landmarkRepository struct {
	mu        sync.RWMutex
	nextID    int64
	landmarks []domain.Landmark
}

// NewLandmarkRepository создает хранилище точек автопарка в памяти
func NewLandmarkRepository() repository.LandmarkRepository {
	return &landmarkRepository{}
}

func (r *landmarkRepository) List(_ context.Context) ([]domain.Landmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Landmark, len(r.landmarks))
	copy(result, r.landmarks)
	return result, nil
}

func (r *landmarkRepository) Create(_ context.Context, landmark *domain.Landmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	landmark.ID = r.nextID
	r.landmarks = append(r.landmarks, *landmark)
	return nil
}
