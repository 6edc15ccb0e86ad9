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

// SearchHandler - обработчик геокодирования
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Прямое геокодирование
// @Description Ищет места по свободному тексту через внешний геокодер. Viewbox в формате minLon,minLat,maxLon,maxLat задаёт область приоритета. При сбое геокодера возвращается пустой список.
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос (минимум 2 символа)"
// @Param viewbox query string false "Область приоритета: minLon,minLat,maxLon,maxLat"
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query:   c.Query("q"),
		Viewbox: c.Query("viewbox"),
		Limit:   c.QueryInt("limit", 10),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Description Определяет адрес по координатам точки
// @Tags Search
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param zoom query int false "Детализация (1-18)" default(18)
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reverse-geocode [get]
func (h *SearchHandler) ReverseGeocode(c *fiber.Ctx) error {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	req := dto.ReverseGeocodeRequest{
		Lat:  c.QueryFloat("lat"),
		Lon:  c.QueryFloat("lon"),
		Zoom: c.QueryInt("zoom", 18),
	}

	result, err := h.searchUC.Reverse(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
