package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type locationRepository struct {
	db *DB
}

// NewLocationRepository создает репозиторий журнала позиций поверх
// таблицы trip_logs
func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Append вставляет запись. recorded_at ставит база (NOW()), id - bigserial,
// он же порядок вставки.
func (r *locationRepository) Append(ctx context.Context, record *domain.LocationRecord) (int64, error) {
	query := `
		INSERT INTO trip_logs (driver_id, lat, lon, status, recorded_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, recorded_at
	`

	row := r.db.QueryRowContext(ctx, query, record.DriverID, record.Lat, record.Lon, record.Status)
	if err := row.Scan(&record.ID, &record.RecordedAt); err != nil {
		r.db.logger.Error("failed to append location record",
			zap.Int64("driver_id", record.DriverID),
			zap.Error(err))
		return 0, fmt.Errorf("append location record: %w", err)
	}

	return record.ID, nil
}

// LatestPerDriver выбирает последнюю вставленную запись каждого водителя.
// DISTINCT ON с сортировкой по id DESC даёт argmax(id) на группу за один
// проход по индексу (driver_id, id) - без пересортировки всего журнала.
func (r *locationRepository) LatestPerDriver(ctx context.Context) ([]domain.LocationRecord, error) {
	query := `
		SELECT DISTINCT ON (driver_id)
			id, driver_id, lat, lon, status, recorded_at
		FROM trip_logs
		ORDER BY driver_id, id DESC
	`

	var records []domain.LocationRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		r.db.logger.Error("failed to load latest locations", zap.Error(err))
		return nil, fmt.Errorf("latest per driver: %w", err)
	}

	return records, nil
}

// HistoryByDriver возвращает записи водителя от новых к старым,
// опционально только с заданными статусами
func (r *locationRepository) HistoryByDriver(ctx context.Context, driverID int64, statuses []string, limit int) ([]domain.LocationRecord, error) {
	query := `
		SELECT id, driver_id, lat, lon, status, recorded_at
		FROM trip_logs
		WHERE driver_id = $1
		  AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY id DESC
		LIMIT $3
	`

	var statusFilter interface{}
	if len(statuses) > 0 {
		statusFilter = pq.Array(statuses)
	}

	var records []domain.LocationRecord
	if err := r.db.SelectContext(ctx, &records, query, driverID, statusFilter, limit); err != nil {
		r.db.logger.Error("failed to load location history",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, fmt.Errorf("history by driver: %w", err)
	}

	return records, nil
}
