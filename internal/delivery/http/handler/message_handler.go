package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/pkg/validator"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

// MessageHandler - обработчик диспетчерских сообщений
type MessageHandler struct {
	messageUC *usecase.MessageUseCase
	logger    *zap.Logger
}

// NewMessageHandler - создание нового MessageHandler
func NewMessageHandler(messageUC *usecase.MessageUseCase, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageUC: messageUC,
		logger:    logger,
	}
}

// Send godoc
// @Summary Отправка сообщения водителю
// @Description Ставит сообщение во входящие водителя непрочитанным. Пустое тело и неизвестный водитель отклоняются.
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Сообщение"
// @Success 200 {object} utils.SuccessResponse{data=domain.Message}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dispatch/messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	msg, err := h.messageUC.Send(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, msg, nil)
}

// FetchUnread godoc
// @Summary Непрочитанные сообщения водителя
// @Description Возвращает непрочитанные сообщения и атомарно помечает их прочитанными: каждое сообщение попадает ровно в одну выборку. Пустой список - нормальный ответ.
// @Tags Messages
// @Produce json
// @Param driver_id path int true "ID водителя"
// @Success 200 {object} utils.SuccessResponse{data=dto.MessagesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/driver/{driver_id}/messages [get]
func (h *MessageHandler) FetchUnread(c *fiber.Ctx) error {
	driverID, err := c.ParamsInt("driver_id")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidDriverID)
	}

	result, err := h.messageUC.FetchUnread(c.Context(), int64(driverID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
