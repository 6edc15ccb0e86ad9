package dto

import "github.com/fleet-backend/internal/domain"

// SearchRequest - прямое геокодирование свободного текста
type SearchRequest struct {
	Query   string `json:"q" validate:"required,min=2"`
	Viewbox string `json:"viewbox,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// SearchResponse - результаты геокодирования
type SearchResponse struct {
	Results []domain.GeocodeResult `json:"results"`
	Total   int                    `json:"total"`
}

// ReverseGeocodeRequest - обратное геокодирование точки
type ReverseGeocodeRequest struct {
	Lat  float64 `json:"lat" validate:"required"`
	Lon  float64 `json:"lon" validate:"required"`
	Zoom int     `json:"zoom,omitempty"`
}
