package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до count непрочитанных сообщений без блокировки
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages подтверждает обработку пачки сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
