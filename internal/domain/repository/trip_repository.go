package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// TripHistoryRepository - append-only история маршрутов водителя
type TripHistoryRepository interface {
	Append(ctx context.Context, entry *domain.TripHistoryEntry) error
	ListByDriver(ctx context.Context, driverID int64, limit int) ([]domain.TripHistoryEntry, error)
}
