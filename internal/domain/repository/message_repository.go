package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// MessageRepository - инбокс сообщений водителя
type MessageRepository interface {
	// Create сохраняет новое непрочитанное сообщение
	Create(ctx context.Context, msg *domain.Message) error

	// FetchUnread атомарно выбирает все непрочитанные сообщения водителя,
	// помечает их прочитанными и возвращает по created_at по возрастанию.
	// Конкурентные вызовы для одного водителя никогда не получают одно
	// сообщение дважды.
	FetchUnread(ctx context.Context, driverID int64) ([]domain.Message, error)
}
