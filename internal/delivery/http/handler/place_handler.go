package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

// PlaceHandler - обработчик поиска мест вокруг точки
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// Search godoc
// @Summary Поиск POI вокруг точки
// @Description Ищет места по каноническим категориям в радиусе вокруг точки. Категории - через запятую; без категорий используется набор по умолчанию. Незнакомая категория не отклоняется, а передаётся провайдеру как есть. При сбое провайдера возвращается пустой список с флагом degraded.
// @Tags Places
// @Produce json
// @Param lat query number true "Широта центра"
// @Param lon query number true "Долгота центра"
// @Param radius query int false "Радиус в метрах" default(1000)
// @Param categories query string false "Категории через запятую: cafe,restaurant,bank,atm,park,hotel,hospital,pharmacy,school,museum,fuel,police,fire,government"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	req := dto.PlaceSearchRequest{
		Lat:          c.QueryFloat("lat"),
		Lon:          c.QueryFloat("lon"),
		RadiusMeters: c.QueryInt("radius", 1000),
	}

	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				req.Categories = append(req.Categories, cat)
			}
		}
	}

	result, err := h.placeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
