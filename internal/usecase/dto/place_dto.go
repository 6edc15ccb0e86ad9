package dto

import "github.com/fleet-backend/internal/domain"

// PlaceSearchRequest - поиск POI вокруг точки
type PlaceSearchRequest struct {
	Lat          float64  `json:"lat" validate:"required"`
	Lon          float64  `json:"lon" validate:"required"`
	RadiusMeters int      `json:"radius_meters" validate:"required"`
	Categories   []string `json:"categories,omitempty"`
}

// PlaceSearchResponse - найденные места. При недоступности провайдера
// Elements пуст, а Degraded выставлен - форма ответа не меняется.
type PlaceSearchResponse struct {
	Elements []domain.PlaceElement `json:"elements"`
	Total    int                   `json:"total"`
	Degraded bool                  `json:"degraded,omitempty"`
}
