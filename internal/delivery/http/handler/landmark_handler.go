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

// LandmarkHandler - обработчик точек автопарка
type LandmarkHandler struct {
	landmarkUC *usecase.LandmarkUseCase
	logger     *zap.Logger
}

// NewLandmarkHandler - создание нового LandmarkHandler
func NewLandmarkHandler(landmarkUC *usecase.LandmarkUseCase, logger *zap.Logger) *LandmarkHandler {
	return &LandmarkHandler{
		landmarkUC: landmarkUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список точек автопарка
// @Tags Landmarks
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LandmarksResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/landmarks [get]
func (h *LandmarkHandler) List(c *fiber.Ctx) error {
	result, err := h.landmarkUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Create godoc
// @Summary Добавление точки автопарка
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param request body dto.LandmarkCreateRequest true "Точка"
// @Success 200 {object} utils.SuccessResponse{data=domain.Landmark}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/landmarks [post]
func (h *LandmarkHandler) Create(c *fiber.Ctx) error {
	var req dto.LandmarkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	landmark, err := h.landmarkUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, landmark, nil)
}
