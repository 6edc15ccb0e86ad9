package domain

import (
	"strings"
	"time"
)

// DriverStatus - статус водителя в момент отправки позиции
type DriverStatus string

const (
	StatusMoving  DriverStatus = "MOVING"
	StatusIdle    DriverStatus = "IDLE"
	StatusStopped DriverStatus = "STOPPED"
	StatusSOS     DriverStatus = "SOS"
)

// DefaultDriverStatus подставляется, когда клиент не прислал статус
const DefaultDriverStatus = StatusMoving

// ParseDriverStatus нормализует статус из запроса. Пустая строка - статус
// по умолчанию; незнакомое значение - ошибка (ok == false).
func ParseDriverStatus(s string) (DriverStatus, bool) {
	switch DriverStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return DefaultDriverStatus, true
	case StatusMoving:
		return StatusMoving, true
	case StatusIdle:
		return StatusIdle, true
	case StatusStopped:
		return StatusStopped, true
	case StatusSOS:
		return StatusSOS, true
	}
	return "", false
}

// LocationRecord - одна запись журнала позиций. Журнал append-only:
// записи не изменяются и не удаляются, ID - порядковый номер вставки
// и ключ разрешения коллизий по времени.
type LocationRecord struct {
	ID         int64        `json:"id" db:"id"`
	DriverID   int64        `json:"driver_id" db:"driver_id"`
	Lat        float64      `json:"lat" db:"lat"`
	Lon        float64      `json:"lon" db:"lon"`
	Status     DriverStatus `json:"status" db:"status"`
	RecordedAt time.Time    `json:"recorded_at" db:"recorded_at"`
}

// FleetSnapshotEntry - производное состояние "последняя известная позиция"
// одного водителя, обогащённое данными для отображения
type FleetSnapshotEntry struct {
	DriverID   int64        `json:"driver_id"`
	Username   string       `json:"username"`
	FullName   string       `json:"full_name"`
	PlateNo    string       `json:"plate_no,omitempty"`
	Lat        float64      `json:"lat"`
	Lon        float64      `json:"lon"`
	Status     DriverStatus `json:"status"`
	RecordedAt time.Time    `json:"recorded_at"`
}
