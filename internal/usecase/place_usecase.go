package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase/dto"
)

// PlaceUseCase - поиск POI вокруг точки через словарь категорий
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

// NewPlaceUseCase - создание нового PlaceUseCase
func NewPlaceUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// BuildQuery собирает составной запрос к провайдеру: объединение
// нативных предикатов всех категорий вокруг центра. Пустой список
// категорий разворачивается в набор по умолчанию; незнакомые категории
// не отбрасываются, а уходят провайдеру как есть.
func (uc *PlaceUseCase) BuildQuery(req dto.PlaceSearchRequest) (*domain.PlaceQuery, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	// Верхней границы нет: лимиты на радиус - дело провайдера, его отказ
	// виден клиенту как degraded-ответ, а не как ошибка валидации
	if req.RadiusMeters <= 0 {
		return nil, errors.ErrInvalidRadius
	}

	categories := req.Categories
	if len(categories) == 0 {
		categories = domain.DefaultPlaceCategories
	}

	var filters []domain.TagFilter
	for _, category := range categories {
		filters = append(filters, domain.ResolvePlaceCategory(category)...)
	}
	if len(filters) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no usable place categories",
		})
	}

	return &domain.PlaceQuery{
		Center:       domain.Coordinate{Lat: req.Lat, Lon: req.Lon},
		RadiusMeters: req.RadiusMeters,
		Filters:      filters,
	}, nil
}

// Search выполняет поиск мест. Сбой провайдера не превращается в ошибку
// клиента: ответ сохраняет форму, список пуст, выставлен флаг degraded.
func (uc *PlaceUseCase) Search(ctx context.Context, req dto.PlaceSearchRequest) (*dto.PlaceSearchResponse, error) {
	query, err := uc.BuildQuery(req)
	if err != nil {
		return nil, err
	}

	elements, err := uc.placeRepo.Search(ctx, *query)
	if err != nil {
		uc.logger.Warn("Place provider unavailable",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return &dto.PlaceSearchResponse{
			Elements: []domain.PlaceElement{},
			Total:    0,
			Degraded: true,
		}, nil
	}

	return &dto.PlaceSearchResponse{
		Elements: elements,
		Total:    len(elements),
	}, nil
}
