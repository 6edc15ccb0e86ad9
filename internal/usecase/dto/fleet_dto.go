package dto

import (
	"time"

	"github.com/fleet-backend/internal/domain"
)

// LocationUpdateRequest - позиция от клиента водителя. Клиентский
// timestamp принимается, но игнорируется: время ставит сервер.
type LocationUpdateRequest struct {
	DriverID        int64    `json:"driver_id" validate:"required"`
	Lat             *float64 `json:"lat" validate:"required"`
	Lon             *float64 `json:"lon" validate:"required"`
	Status          string   `json:"status,omitempty"`
	ClientTimestamp string   `json:"timestamp,omitempty"`
}

// LocationUpdateResponse - подтверждение записи
type LocationUpdateResponse struct {
	RecordID   int64     `json:"record_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// FleetSnapshotResponse - снимок "последняя позиция каждого водителя"
type FleetSnapshotResponse struct {
	Fleet []domain.FleetSnapshotEntry `json:"fleet"`
	Total int                         `json:"total"`
}

// LocationHistoryResponse - выборка журнала позиций одного водителя
type LocationHistoryResponse struct {
	Records []domain.LocationRecord `json:"records"`
	Total   int                     `json:"total"`
}

// TripHistoryResponse - история маршрутов водителя
type TripHistoryResponse struct {
	Trips []domain.TripHistoryEntry `json:"trips"`
	Total int                       `json:"total"`
}

// TripHistoryRequest - запись истории маршрутов
type TripHistoryRequest struct {
	StartLat float64 `json:"start_lat" validate:"required"`
	StartLon float64 `json:"start_lon" validate:"required"`
	EndLat   float64 `json:"end_lat" validate:"required"`
	EndLon   float64 `json:"end_lon" validate:"required"`
	Profile  string  `json:"profile,omitempty"`
}
