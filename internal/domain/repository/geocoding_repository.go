package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// GeocodingRepository - внешний геокодер (прямой и обратный)
type GeocodingRepository interface {
	// Search - прямое геокодирование свободного текста; viewbox задаёт
	// область приоритета и может быть nil
	Search(ctx context.Context, query string, viewbox *domain.Viewbox, limit int) ([]domain.GeocodeResult, error)

	// Reverse - обратное геокодирование точки; zoom управляет детализацией
	Reverse(ctx context.Context, lat, lon float64, zoom int) (*domain.GeocodeResult, error)
}
