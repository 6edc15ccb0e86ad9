package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// PublishToStream сериализует data в JSON и публикует в поле "data"
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal stream payload: %w", err)
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("publish to stream: %w", err)
	}

	return nil
}

// CreateConsumerGroup создаёт consumer group для стрима
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	// Группа стартует с "$" (только новые сообщения); MKSTREAM создаст
	// стрим, если его ещё нет
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		// BUSYGROUP - группа уже существует, это не ошибка
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch читает до count непрочитанных сообщений без блокировки
func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    -1, // неблокирующее чтение
	}).Result()

	if err != nil {
		if err == redis.Nil {
			return nil, nil // очередь пуста
		}
		return nil, fmt.Errorf("read from stream: %w", err)
	}

	var messages []domain.StreamMessage
	for _, streamResult := range result {
		for _, msg := range streamResult.Messages {
			data, ok := msg.Values["data"].(string)
			if !ok {
				r.logger.Warn("Message does not contain 'data' field",
					zap.String("message_id", msg.ID))
				continue
			}
			messages = append(messages, domain.StreamMessage{
				ID:   msg.ID,
				Data: data,
			})
		}
	}

	return messages, nil
}

// AckMessage подтверждает обработку сообщения
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to ack message",
			zap.String("stream", stream),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("ack message: %w", err)
	}
	return nil
}

// AckMessages подтверждает обработку пачки сообщений одной командой
func (r *streamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}
	if err := r.client.XAck(ctx, stream, group, messageIDs...).Err(); err != nil {
		r.logger.Error("Failed to ack messages",
			zap.String("stream", stream),
			zap.Int("count", len(messageIDs)),
			zap.Error(err))
		return fmt.Errorf("ack messages: %w", err)
	}
	return nil
}
