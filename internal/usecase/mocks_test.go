package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fleet-backend/internal/domain"
)

// MockLocationRepository is a mock of LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Append(ctx context.Context, record *domain.LocationRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) LatestPerDriver(ctx context.Context) ([]domain.LocationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationRecord), args.Error(1)
}

func (m *MockLocationRepository) HistoryByDriver(ctx context.Context, driverID int64, statuses []string, limit int) ([]domain.LocationRecord, error) {
	args := m.Called(ctx, driverID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationRecord), args.Error(1)
}

// MockDriverRepository is a mock of DriverRepository
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

// MockTripHistoryRepository is a mock of TripHistoryRepository
type MockTripHistoryRepository struct {
	mock.Mock
}

func (m *MockTripHistoryRepository) Append(ctx context.Context, entry *domain.TripHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTripHistoryRepository) ListByDriver(ctx context.Context, driverID int64, limit int) ([]domain.TripHistoryEntry, error) {
	args := m.Called(ctx, driverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripHistoryEntry), args.Error(1)
}

// MockMessageRepository is a mock of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FetchUnread(ctx context.Context, driverID int64) ([]domain.Message, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) Search(ctx context.Context, query domain.PlaceQuery) ([]domain.PlaceElement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceElement), args.Error(1)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Search(ctx context.Context, query string, viewbox *domain.Viewbox, limit int) ([]domain.GeocodeResult, error) {
	args := m.Called(ctx, query, viewbox, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeocodeResult), args.Error(1)
}

func (m *MockGeocodingRepository) Reverse(ctx context.Context, lat, lon float64, zoom int) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, lat, lon, zoom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func ptrFloat64(v float64) *float64 {
	return &v
}
