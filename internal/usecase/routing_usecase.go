package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase/dto"
)

// RoutingUseCase - фасад над провайдерами маршрутизации. Наружу
// отдаётся единая форма ответа независимо от провайдера; недоступность
// всех провайдеров выражается нейтральным пустым телом, а не ошибкой.
type RoutingUseCase struct {
	providers []repository.RoutingProvider
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewRoutingUseCase - создание нового RoutingUseCase. Провайдеры
// передаются в порядке предпочтения; cacheRepo может быть nil.
func NewRoutingUseCase(
	providers []repository.RoutingProvider,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *RoutingUseCase {
	return &RoutingUseCase{
		providers: providers,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Route строит маршрут между двумя точками. Провайдеры опрашиваются в
// порядке предпочтения; опции (платные дороги, трафик) поднимают в
// начало очереди провайдеров, которые их понимают. Ошибка провайдера
// не видна клиенту - фасад переходит к следующему, а когда провайдеров
// не осталось, возвращает код ProviderUnavailable с пустым списком
// маршрутов.
func (uc *RoutingUseCase) Route(ctx context.Context, req dto.RouteRequest) (*domain.RouteResult, error) {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLng) ||
		!utils.ValidateCoordinates(req.EndLat, req.EndLng) {
		return nil, errors.ErrInvalidCoordinates
	}

	query := domain.RouteQuery{
		Start:   domain.Coordinate{Lat: req.StartLat, Lon: req.StartLng},
		End:     domain.Coordinate{Lat: req.EndLat, Lon: req.EndLng},
		Profile: domain.ParseRouteProfile(req.Profile),
		Options: domain.RouteOptions{
			AvoidTolls:    req.AvoidTolls,
			AvoidHighways: req.AvoidHighways,
			Traffic:       req.Traffic,
		},
		Steps: req.Steps,
	}

	cacheKey := routeCacheKey(query)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	for _, provider := range uc.orderedProviders(query.Options) {
		result, err := provider.Route(ctx, query)
		if err != nil {
			uc.logger.Warn("Routing provider failed",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			continue
		}

		uc.toCache(ctx, cacheKey, result)
		return result, nil
	}

	uc.logger.Warn("All routing providers unavailable",
		zap.Float64("start_lat", req.StartLat),
		zap.Float64("start_lng", req.StartLng))
	return domain.EmptyRouteResult(), nil
}

// orderedProviders возвращает очередь опроса. Провайдеры, умеющие
// опции маршрута, идут первыми, когда опции заданы; базовый порядок
// сохраняется в остальном.
func (uc *RoutingUseCase) orderedProviders(opts domain.RouteOptions) []repository.RoutingProvider {
	if !opts.Any() {
		return uc.providers
	}

	ordered := make([]repository.RoutingProvider, 0, len(uc.providers))
	rest := make([]repository.RoutingProvider, 0, len(uc.providers))
	for _, p := range uc.providers {
		if p.SupportsOptions() {
			ordered = append(ordered, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(ordered, rest...)
}

func (uc *RoutingUseCase) fromCache(ctx context.Context, key string) *domain.RouteResult {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result domain.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		uc.logger.Warn("Failed to unmarshal cached route", zap.Error(err))
		return nil
	}
	return &result
}

func (uc *RoutingUseCase) toCache(ctx context.Context, key string, result *domain.RouteResult) {
	if uc.cacheRepo == nil || result.Code != domain.RouteCodeOk {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache route", zap.Error(err))
	}
}

func routeCacheKey(q domain.RouteQuery) string {
	return fmt.Sprintf("route:%s:%.6f,%.6f:%.6f,%.6f:t%v:h%v:tr%v:s%v",
		q.Profile,
		q.Start.Lat, q.Start.Lon,
		q.End.Lat, q.End.Lon,
		q.Options.AvoidTolls, q.Options.AvoidHighways, q.Options.Traffic,
		q.Steps)
}
