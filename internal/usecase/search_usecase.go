package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase/dto"
)

const defaultSearchLimit = 10

// SearchUseCase - прямое и обратное геокодирование с кэшированием.
// Геокодер - внешний и небыстрый, результаты стабильны, поэтому
// кэшируются надолго.
type SearchUseCase struct {
	geocodeRepo repository.GeocodingRepository
	cacheRepo   repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewSearchUseCase - создание нового SearchUseCase; cacheRepo может быть nil
func NewSearchUseCase(
	geocodeRepo repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Search - прямое геокодирование свободного текста. Сбой геокодера
// отдаётся пустым списком, форма ответа не меняется.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if len(query) < 2 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "query must be at least 2 characters",
		})
	}

	viewbox, err := parseViewbox(req.Viewbox)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = defaultSearchLimit
	}

	cacheKey := fmt.Sprintf("geocode:search:%s:%s:%d", strings.ToLower(query), req.Viewbox, limit)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.SearchResponse
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	results, err := uc.geocodeRepo.Search(ctx, query, viewbox, limit)
	if err != nil {
		uc.logger.Warn("Geocoder unavailable", zap.String("query", query), zap.Error(err))
		return &dto.SearchResponse{Results: []domain.GeocodeResult{}, Total: 0}, nil
	}

	resp := &dto.SearchResponse{Results: results, Total: len(results)}
	uc.cache(ctx, cacheKey, resp)
	return resp, nil
}

// Reverse - обратное геокодирование точки
func (uc *SearchUseCase) Reverse(ctx context.Context, req dto.ReverseGeocodeRequest) (*domain.GeocodeResult, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	zoom := req.Zoom
	if zoom <= 0 || zoom > 18 {
		zoom = 18
	}

	cacheKey := fmt.Sprintf("geocode:reverse:%.6f:%.6f:%d", req.Lat, req.Lon, zoom)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.GeocodeResult
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	result, err := uc.geocodeRepo.Reverse(ctx, req.Lat, req.Lon, zoom)
	if err != nil {
		uc.logger.Warn("Reverse geocoder unavailable",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return &domain.GeocodeResult{Lat: req.Lat, Lon: req.Lon}, nil
	}

	uc.cache(ctx, cacheKey, result)
	return result, nil
}

func (uc *SearchUseCase) cache(ctx context.Context, key string, value interface{}) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
	}
}

// parseViewbox разбирает строку "minLon,minLat,maxLon,maxLat"
func parseViewbox(raw string) (*domain.Viewbox, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("viewbox must have 4 comma-separated values")
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid viewbox value %q", part)
		}
		values[i] = v
	}

	return &domain.Viewbox{
		MinLon: values[0],
		MinLat: values[1],
		MaxLon: values[2],
		MaxLat: values[3],
	}, nil
}
