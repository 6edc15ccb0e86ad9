package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/usecase/dto"
)

// MessageUseCase - диспетчерские сообщения водителям
type MessageUseCase struct {
	messageRepo repository.MessageRepository
	driverRepo  repository.DriverRepository
	logger      *zap.Logger
}

// NewMessageUseCase - создание нового MessageUseCase
func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	driverRepo repository.DriverRepository,
	logger *zap.Logger,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		driverRepo:  driverRepo,
		logger:      logger,
	}
}

// Send ставит сообщение во входящие водителя непрочитанным
func (uc *MessageUseCase) Send(ctx context.Context, req dto.SendMessageRequest) (*domain.Message, error) {
	if req.DriverID <= 0 {
		return nil, errors.ErrInvalidDriverID
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, errors.ErrEmptyMessage
	}

	exists, err := uc.driverRepo.Exists(ctx, req.DriverID)
	if err != nil {
		uc.logger.Error("Failed to check driver", zap.Int64("driver_id", req.DriverID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if !exists {
		return nil, errors.ErrDriverNotFound
	}

	msg := &domain.Message{
		ID:       uuid.New(),
		DriverID: req.DriverID,
		Body:     req.Body,
	}

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		uc.logger.Error("Failed to create message",
			zap.Int64("driver_id", req.DriverID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return msg, nil
}

// FetchUnread выдаёт непрочитанные сообщения водителя и атомарно
// помечает их прочитанными: каждое сообщение доставляется ровно одной
// выборке, даже при конкурентных запросах.
func (uc *MessageUseCase) FetchUnread(ctx context.Context, driverID int64) (*dto.MessagesResponse, error) {
	if driverID <= 0 {
		return nil, errors.ErrInvalidDriverID
	}

	messages, err := uc.messageRepo.FetchUnread(ctx, driverID)
	if err != nil {
		uc.logger.Error("Failed to fetch unread messages",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	// Пустой список - нормальный ответ, не ошибка
	return &dto.MessagesResponse{
		Messages: messages,
		Total:    len(messages),
	}, nil
}
