package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с прошивкой трекеров)
const (
	StreamLocationReports = "stream:fleet:locations"
)

// LocationReportEvent - событие позиции из стрима. Полевые устройства
// публикуют их вместо HTTP-запроса; воркер переливает события в журнал.
type LocationReportEvent struct {
	EventID  uuid.UUID `json:"event_id"`
	DriverID int64     `json:"driver_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	Status   string    `json:"status,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
