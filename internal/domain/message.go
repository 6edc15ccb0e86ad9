package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message - сообщение диспетчера водителю. Переход unread -> read
// монотонный: однажды прочитанное сообщение больше не выдаётся.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DriverID  int64     `json:"driver_id" db:"driver_id"`
	Body      string    `json:"body" db:"body"`
	Read      bool      `json:"read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
