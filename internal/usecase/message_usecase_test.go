package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

func TestMessageUseCase_Send(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		mockDriver := &MockDriverRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, mockDriver, logger)

		mockDriver.On("Exists", ctx, int64(1)).Return(true, nil)
		mockMessage.On("Create", ctx, mock.MatchedBy(func(msg *domain.Message) bool {
			return msg.DriverID == 1 && msg.Body == "return to base" && msg.ID != uuid.Nil
		})).Return(nil)

		msg, err := uc.Send(ctx, dto.SendMessageRequest{DriverID: 1, Body: "return to base"})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, msg.ID)
		assert.False(t, msg.Read)
		mockMessage.AssertExpectations(t)
	})

	t.Run("blank body rejected", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, &MockDriverRepository{}, logger)

		_, err := uc.Send(ctx, dto.SendMessageRequest{DriverID: 1, Body: "   "})

		assert.Equal(t, apperrors.ErrEmptyMessage, err)
		mockMessage.AssertNotCalled(t, "Create")
	})

	t.Run("zero driver id rejected", func(t *testing.T) {
		uc := usecase.NewMessageUseCase(&MockMessageRepository{}, &MockDriverRepository{}, logger)

		_, err := uc.Send(ctx, dto.SendMessageRequest{DriverID: 0, Body: "hello"})

		assert.Equal(t, apperrors.ErrInvalidDriverID, err)
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		mockDriver := &MockDriverRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, mockDriver, logger)

		mockDriver.On("Exists", ctx, int64(404)).Return(false, nil)

		_, err := uc.Send(ctx, dto.SendMessageRequest{DriverID: 404, Body: "hello"})

		assert.Equal(t, apperrors.ErrDriverNotFound, err)
		mockMessage.AssertNotCalled(t, "Create")
	})
}

func TestMessageUseCase_FetchUnread(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns claimed messages", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, &MockDriverRepository{}, logger)

		expected := []domain.Message{
			{ID: uuid.New(), DriverID: 1, Body: "first"},
			{ID: uuid.New(), DriverID: 1, Body: "second"},
		}
		mockMessage.On("FetchUnread", ctx, int64(1)).Return(expected, nil)

		resp, err := uc.FetchUnread(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, expected, resp.Messages)
	})

	t.Run("empty inbox is not an error", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, &MockDriverRepository{}, logger)

		mockMessage.On("FetchUnread", ctx, int64(1)).Return([]domain.Message{}, nil)

		resp, err := uc.FetchUnread(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("storage failure maps to database error", func(t *testing.T) {
		mockMessage := &MockMessageRepository{}
		uc := usecase.NewMessageUseCase(mockMessage, &MockDriverRepository{}, logger)

		mockMessage.On("FetchUnread", ctx, int64(1)).Return(nil, errors.New("boom"))

		_, err := uc.FetchUnread(ctx, 1)

		assert.Equal(t, apperrors.ErrDatabaseError, err)
	})
}
