package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type tripRepository struct {
	db *DB
}

// NewTripHistoryRepository создает репозиторий истории маршрутов
func NewTripHistoryRepository(db *DB) repository.TripHistoryRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Append(ctx context.Context, entry *domain.TripHistoryEntry) error {
	query := `
		INSERT INTO trip_history (driver_id, start_lat, start_lon, end_lat, end_lon, profile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowContext(ctx, query,
		entry.DriverID, entry.StartLat, entry.StartLon, entry.EndLat, entry.EndLon, entry.Profile)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		r.db.logger.Error("failed to append trip history",
			zap.Int64("driver_id", entry.DriverID),
			zap.Error(err))
		return fmt.Errorf("append trip history: %w", err)
	}

	return nil
}

func (r *tripRepository) ListByDriver(ctx context.Context, driverID int64, limit int) ([]domain.TripHistoryEntry, error) {
	query := `
		SELECT id, driver_id, start_lat, start_lon, end_lat, end_lon, profile, created_at
		FROM trip_history
		WHERE driver_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	var entries []domain.TripHistoryEntry
	if err := r.db.SelectContext(ctx, &entries, query, driverID, limit); err != nil {
		r.db.logger.Error("failed to list trip history",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, fmt.Errorf("list trip history: %w", err)
	}

	return entries, nil
}
