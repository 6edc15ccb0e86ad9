package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
)

// fakeProvider - управляемый провайдер маршрутизации для тестов фасада
type fakeProvider struct {
	name        string
	withOptions bool
	result      *domain.RouteResult
	err         error
	calls       int
	lastQuery   domain.RouteQuery
}

func (p *fakeProvider) Name() string          { return p.name }
func (p *fakeProvider) SupportsOptions() bool { return p.withOptions }

func (p *fakeProvider) Route(_ context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	p.calls++
	p.lastQuery = query
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func okResult(provider string) *domain.RouteResult {
	return &domain.RouteResult{
		Code:     domain.RouteCodeOk,
		Provider: provider,
		Routes:   []domain.Route{{Geometry: "abc", Distance: 1000, Duration: 120}},
	}
}

func baseRequest() dto.RouteRequest {
	return dto.RouteRequest{
		StartLat: 41.40, StartLng: 2.16,
		EndLat: 41.38, EndLng: 2.17,
	}
}

func TestRoutingUseCase_Route(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("first provider wins", func(t *testing.T) {
		primary := &fakeProvider{name: "osrm", result: okResult("osrm")}
		secondary := &fakeProvider{name: "mapbox", withOptions: true, result: okResult("mapbox")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{primary, secondary}, nil, time.Minute, logger)

		result, err := uc.Route(ctx, baseRequest())

		require.NoError(t, err)
		assert.Equal(t, "osrm", result.Provider)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, secondary.calls)
	})

	t.Run("falls back to next provider on failure", func(t *testing.T) {
		primary := &fakeProvider{name: "osrm", err: errors.New("timeout")}
		secondary := &fakeProvider{name: "mapbox", withOptions: true, result: okResult("mapbox")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{primary, secondary}, nil, time.Minute, logger)

		result, err := uc.Route(ctx, baseRequest())

		require.NoError(t, err)
		assert.Equal(t, "mapbox", result.Provider)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 1, secondary.calls)
	})

	t.Run("all providers down yields neutral empty result", func(t *testing.T) {
		primary := &fakeProvider{name: "osrm", err: errors.New("timeout")}
		secondary := &fakeProvider{name: "mapbox", withOptions: true, err: errors.New("502")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{primary, secondary}, nil, time.Minute, logger)

		result, err := uc.Route(ctx, baseRequest())

		// Недоступность провайдеров - не ошибка клиента
		require.NoError(t, err)
		assert.Equal(t, domain.RouteCodeProviderUnavailable, result.Code)
		assert.NotNil(t, result.Routes)
		assert.Empty(t, result.Routes)
	})

	t.Run("options promote capable provider", func(t *testing.T) {
		plain := &fakeProvider{name: "osrm", result: okResult("osrm")}
		capable := &fakeProvider{name: "mapbox", withOptions: true, result: okResult("mapbox")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{plain, capable}, nil, time.Minute, logger)

		req := baseRequest()
		req.AvoidTolls = true

		result, err := uc.Route(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "mapbox", result.Provider)
		assert.Equal(t, 0, plain.calls)
		assert.True(t, capable.lastQuery.Options.AvoidTolls)
	})

	t.Run("unknown profile normalized to driving", func(t *testing.T) {
		provider := &fakeProvider{name: "osrm", result: okResult("osrm")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{provider}, nil, time.Minute, logger)

		req := baseRequest()
		req.Profile = "hovercraft"

		_, err := uc.Route(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, domain.ProfileDriving, provider.lastQuery.Profile)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		provider := &fakeProvider{name: "osrm", result: okResult("osrm")}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{provider}, nil, time.Minute, logger)

		req := baseRequest()
		req.EndLat = 120.0

		_, err := uc.Route(ctx, req)

		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)
		assert.Equal(t, 0, provider.calls)
	})
}

func TestRoutingUseCase_Cache(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("successful result is cached", func(t *testing.T) {
		provider := &fakeProvider{name: "osrm", result: okResult("osrm")}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{provider}, mockCache, time.Minute, logger)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)

		_, err := uc.Route(ctx, baseRequest())

		require.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips providers", func(t *testing.T) {
		provider := &fakeProvider{name: "osrm", result: okResult("osrm")}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{provider}, mockCache, time.Minute, logger)

		cached, err := json.Marshal(okResult("osrm"))
		require.NoError(t, err)
		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(cached, nil)

		result, err := uc.Route(ctx, baseRequest())

		require.NoError(t, err)
		assert.Equal(t, "osrm", result.Provider)
		assert.Equal(t, 0, provider.calls)
	})

	t.Run("degraded result is not cached", func(t *testing.T) {
		provider := &fakeProvider{name: "osrm", err: errors.New("down")}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoutingUseCase(
			[]repository.RoutingProvider{provider}, mockCache, time.Minute, logger)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)

		result, err := uc.Route(ctx, baseRequest())

		require.NoError(t, err)
		assert.Equal(t, domain.RouteCodeProviderUnavailable, result.Code)
		mockCache.AssertNotCalled(t, "Set")
	})
}
