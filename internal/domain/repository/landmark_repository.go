package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// LandmarkRepository - хранилище точек автопарка
type LandmarkRepository interface {
	List(ctx context.Context) ([]domain.Landmark, error)
	Create(ctx context.Context, landmark *domain.Landmark) error
}
