package domain

import "time"

// TripHistoryEntry - запись истории построенных маршрутов водителя.
// Append-only список, вне ядра живых данных.
type TripHistoryEntry struct {
	ID        int64        `json:"id" db:"id"`
	DriverID  int64        `json:"driver_id" db:"driver_id"`
	StartLat  float64      `json:"start_lat" db:"start_lat"`
	StartLon  float64      `json:"start_lon" db:"start_lon"`
	EndLat    float64      `json:"end_lat" db:"end_lat"`
	EndLon    float64      `json:"end_lon" db:"end_lon"`
	Profile   RouteProfile `json:"profile" db:"profile"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
