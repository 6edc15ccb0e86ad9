package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase/dto"
)

// LandmarkUseCase - собственные точки автопарка (базы, склады, стоянки)
type LandmarkUseCase struct {
	landmarkRepo repository.LandmarkRepository
	logger       *zap.Logger
}

// NewLandmarkUseCase - создание нового LandmarkUseCase
func NewLandmarkUseCase(landmarkRepo repository.LandmarkRepository, logger *zap.Logger) *LandmarkUseCase {
	return &LandmarkUseCase{
		landmarkRepo: landmarkRepo,
		logger:       logger,
	}
}

// List возвращает все точки автопарка
func (uc *LandmarkUseCase) List(ctx context.Context) (*dto.LandmarksResponse, error) {
	landmarks, err := uc.landmarkRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list landmarks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.LandmarksResponse{
		Landmarks: landmarks,
		Total:     len(landmarks),
	}, nil
}

// Create добавляет точку автопарка
func (uc *LandmarkUseCase) Create(ctx context.Context, req dto.LandmarkCreateRequest) (*domain.Landmark, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.ErrLandmarkInvalid.WithDetails(map[string]interface{}{
			"reason": "name is required",
		})
	}
	if req.Lat == nil || req.Lon == nil || !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, errors.ErrLandmarkInvalid.WithDetails(map[string]interface{}{
			"reason": "valid coordinates are required",
		})
	}

	landmark := &domain.Landmark{
		Name:    strings.TrimSpace(req.Name),
		Type:    req.Type,
		Lat:     *req.Lat,
		Lon:     *req.Lon,
		IconURL: req.IconURL,
	}

	if err := uc.landmarkRepo.Create(ctx, landmark); err != nil {
		uc.logger.Error("Failed to create landmark", zap.String("name", landmark.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return landmark, nil
}
