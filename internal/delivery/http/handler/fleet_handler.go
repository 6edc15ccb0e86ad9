package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/pkg/validator"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

// FleetHandler - обработчик журнала позиций и снимка автопарка
type FleetHandler struct {
	fleetUC *usecase.FleetUseCase
	logger  *zap.Logger
}

// NewFleetHandler - создание нового FleetHandler
func NewFleetHandler(fleetUC *usecase.FleetUseCase, logger *zap.Logger) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
		logger:  logger,
	}
}

// ReportLocation godoc
// @Summary Приём позиции водителя
// @Description Дописывает позицию в журнал. Время записи ставит сервер; клиентский timestamp игнорируется. Неизвестный водитель или координаты вне диапазона отклоняются без записи.
// @Tags Fleet
// @Accept json
// @Produce json
// @Param request body dto.LocationUpdateRequest true "Позиция водителя"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationUpdateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/driver/location [post]
func (h *FleetHandler) ReportLocation(c *fiber.Ctx) error {
	var req dto.LocationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.fleetUC.ReportLocation(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// FleetStatus godoc
// @Summary Снимок автопарка
// @Description Возвращает последнюю известную позицию каждого водителя с данными для отображения (имя, госномер). Водители без единой записи в снимок не попадают.
// @Tags Fleet
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FleetSnapshotResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/fleet/status [get]
func (h *FleetHandler) FleetStatus(c *fiber.Ctx) error {
	result, err := h.fleetUC.Snapshot(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// ListDrivers godoc
// @Summary Список активных водителей
// @Tags Fleet
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/drivers [get]
func (h *FleetHandler) ListDrivers(c *fiber.Ctx) error {
	drivers, err := h.fleetUC.ListDrivers(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, drivers, &utils.Meta{
		Total: len(drivers),
	})
}

// LocationHistory godoc
// @Summary Журнал позиций водителя
// @Description Возвращает записи журнала одного водителя от новых к старым. Фильтр по статусам - через запятую: status=MOVING,SOS
// @Tags Fleet
// @Produce json
// @Param driver_id path int true "ID водителя"
// @Param status query string false "Фильтр по статусам через запятую"
// @Param limit query int false "Максимум записей" default(100)
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationHistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/driver/{driver_id}/locations [get]
func (h *FleetHandler) LocationHistory(c *fiber.Ctx) error {
	driverID, err := c.ParamsInt("driver_id")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidDriverID)
	}

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	result, err := h.fleetUC.LocationHistory(c.Context(), int64(driverID), statuses, c.QueryInt("limit", 100))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// AppendTripHistory godoc
// @Summary Запись истории маршрутов
// @Description Сохраняет построенный маршрут (начало, конец, профиль) в историю водителя
// @Tags Fleet
// @Accept json
// @Produce json
// @Param driver_id path int true "ID водителя"
// @Param request body dto.TripHistoryRequest true "Маршрут"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/driver/{driver_id}/history [post]
func (h *FleetHandler) AppendTripHistory(c *fiber.Ctx) error {
	driverID, err := c.ParamsInt("driver_id")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidDriverID)
	}

	var req dto.TripHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.fleetUC.AppendTripHistory(c.Context(), int64(driverID), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"saved": true}, nil)
}

// ListTripHistory godoc
// @Summary История маршрутов водителя
// @Tags Fleet
// @Produce json
// @Param driver_id path int true "ID водителя"
// @Param limit query int false "Максимум записей" default(100)
// @Success 200 {object} utils.SuccessResponse{data=dto.TripHistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/driver/{driver_id}/history [get]
func (h *FleetHandler) ListTripHistory(c *fiber.Ctx) error {
	driverID, err := c.ParamsInt("driver_id")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidDriverID)
	}

	result, err := h.fleetUC.ListTripHistory(c.Context(), int64(driverID), c.QueryInt("limit", 100))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
