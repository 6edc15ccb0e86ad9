package dto

import "github.com/fleet-backend/internal/domain"

// LandmarkCreateRequest - новая точка автопарка
type LandmarkCreateRequest struct {
	Name    string   `json:"name" validate:"required"`
	Type    string   `json:"type,omitempty"`
	Lat     *float64 `json:"lat" validate:"required"`
	Lon     *float64 `json:"lon" validate:"required"`
	IconURL string   `json:"icon_url,omitempty"`
}

// LandmarksResponse - список точек автопарка
type LandmarksResponse struct {
	Landmarks []domain.Landmark `json:"landmarks"`
	Total     int               `json:"total"`
}
