package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// DriverRepository - реестр водителей (read-side)
type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)

	// Exists проверяет, что водитель существует и активен
	Exists(ctx context.Context, id int64) (bool, error)

	// List возвращает активных водителей для диспетчерской
	List(ctx context.Context) ([]domain.Driver, error)
}
