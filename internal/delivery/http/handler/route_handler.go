package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

// RouteHandler - обработчик построения маршрутов
type RouteHandler struct {
	routingUC *usecase.RoutingUseCase
	logger    *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routingUC *usecase.RoutingUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routingUC: routingUC,
		logger:    logger,
	}
}

// Route godoc
// @Summary Построение маршрута
// @Description Строит маршрут между двумя точками через внешние сервисы маршрутизации с автоматическим фолбэком. При недоступности всех провайдеров возвращается код ProviderUnavailable с пустым списком маршрутов - HTTP-статус остаётся 200.
// @Tags Routing
// @Produce json
// @Param start_lat query number true "Широта начала"
// @Param start_lng query number true "Долгота начала"
// @Param end_lat query number true "Широта конца"
// @Param end_lng query number true "Долгота конца"
// @Param profile query string false "Профиль: driving, walking, cycling, motorcycle" default(driving)
// @Param steps query bool false "Включить пошаговые манёвры"
// @Param avoid_tolls query bool false "Избегать платных дорог"
// @Param avoid_highways query bool false "Избегать магистралей"
// @Param traffic query bool false "Учитывать пробки"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/route [get]
func (h *RouteHandler) Route(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		StartLat:      c.QueryFloat("start_lat"),
		StartLng:      c.QueryFloat("start_lng"),
		EndLat:        c.QueryFloat("end_lat"),
		EndLng:        c.QueryFloat("end_lng"),
		Profile:       c.Query("profile"),
		Steps:         c.QueryBool("steps"),
		AvoidTolls:    c.QueryBool("avoid_tolls"),
		AvoidHighways: c.QueryBool("avoid_highways"),
		Traffic:       c.QueryBool("traffic"),
	}

	if c.Query("start_lat") == "" || c.Query("start_lng") == "" ||
		c.Query("end_lat") == "" || c.Query("end_lng") == "" {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	result, err := h.routingUC.Route(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
