package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type messageRepository struct {
	db *DB
}

// NewMessageRepository создает репозиторий инбокса поверх driver_messages
func NewMessageRepository(db *DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO driver_messages (id, driver_id, body, is_read, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING created_at
	`

	row := r.db.QueryRowContext(ctx, query, msg.ID, msg.DriverID, msg.Body)
	if err := row.Scan(&msg.CreatedAt); err != nil {
		r.db.logger.Error("failed to create message",
			zap.Int64("driver_id", msg.DriverID),
			zap.Error(err))
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// FetchUnread помечает и выдаёт непрочитанные сообщения одним UPDATE.
// Атомарность даёт сама база: строка с is_read = FALSE достаётся ровно
// одному из конкурентных вызовов.
func (r *messageRepository) FetchUnread(ctx context.Context, driverID int64) ([]domain.Message, error) {
	// Коллизии по created_at разрешает seq - порядок вставки, а не UUID
	query := `
		WITH claimed AS (
			UPDATE driver_messages
			SET is_read = TRUE
			WHERE driver_id = $1 AND is_read = FALSE
			RETURNING id, seq, driver_id, body, is_read, created_at
		)
		SELECT id, driver_id, body, is_read, created_at
		FROM claimed
		ORDER BY created_at ASC, seq ASC
	`

	var messages []domain.Message
	if err := r.db.SelectContext(ctx, &messages, query, driverID); err != nil {
		r.db.logger.Error("failed to fetch unread messages",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, fmt.Errorf("fetch unread: %w", err)
	}

	return messages, nil
}
