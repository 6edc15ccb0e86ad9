package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type landmarkRepository struct {
	db *DB
}

// NewLandmarkRepository создает репозиторий точек автопарка
func NewLandmarkRepository(db *DB) repository.LandmarkRepository {
	return &landmarkRepository{db: db}
}

func (r *landmarkRepository) List(ctx context.Context) ([]domain.Landmark, error) {
	query := `
		SELECT id, name, type, lat, lon, icon_url
		FROM landmarks
		ORDER BY name
	`

	var landmarks []domain.Landmark
	if err := r.db.SelectContext(ctx, &landmarks, query); err != nil {
		r.db.logger.Error("failed to list landmarks", zap.Error(err))
		return nil, fmt.Errorf("list landmarks: %w", err)
	}

	return landmarks, nil
}

func (r *landmarkRepository) Create(ctx context.Context, landmark *domain.Landmark) error {
	query := `
		INSERT INTO landmarks (name, type, lat, lon, icon_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	row := r.db.QueryRowContext(ctx, query,
		landmark.Name, landmark.Type, landmark.Lat, landmark.Lon, landmark.IconURL)
	if err := row.Scan(&landmark.ID); err != nil {
		r.db.logger.Error("failed to create landmark",
			zap.String("name", landmark.Name),
			zap.Error(err))
		return fmt.Errorf("create landmark: %w", err)
	}

	return nil
}
