package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// PlaceRepository - внешний POI-провайдер, исполняющий составной
// tag-запрос с радиусом вокруг точки
type PlaceRepository interface {
	Search(ctx context.Context, query domain.PlaceQuery) ([]domain.PlaceElement, error)
}
