package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type driverRepository struct {
	db *DB
}

// NewDriverRepository создает read-side репозиторий реестра водителей
func NewDriverRepository(db *DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `
		SELECT id, username, full_name, license_no, plate_no, phone, shift_schedule, active
		FROM drivers
		WHERE id = $1
	`

	var driver domain.Driver
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.db.logger.Error("failed to get driver", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return &driver, nil
}

func (r *driverRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM drivers WHERE id = $1 AND active)`

	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		r.db.logger.Error("failed to check driver existence", zap.Int64("id", id), zap.Error(err))
		return false, fmt.Errorf("driver exists: %w", err)
	}

	return exists, nil
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	query := `
		SELECT id, username, full_name, license_no, plate_no, phone, shift_schedule, active
		FROM drivers
		WHERE active
		ORDER BY username
	`

	var drivers []domain.Driver
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		r.db.logger.Error("failed to list drivers", zap.Error(err))
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	return drivers, nil
}
