package location

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/repository/memory"
	"github.com/fleet-backend/internal/usecase"
)

// MockStreamRepository - мок репозитория стрима
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func encodeEvent(t *testing.T, event domain.LocationReportEvent) string {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return string(data)
}

// newTestWorker собирает воркер поверх in-memory репозиториев: путь
// валидации тот же, что и у HTTP-приёма.
func newTestWorker(streamRepo *MockStreamRepository) (*LocationIngestWorker, *memory.DriverRepository, *usecase.FleetUseCase) {
	logger := zap.NewNop()

	locationRepo := memory.NewLocationRepository()
	driverRepo := memory.NewDriverRepository()
	tripRepo := memory.NewTripHistoryRepository()
	fleetUC := usecase.NewFleetUseCase(locationRepo, driverRepo, tripRepo, logger)

	w := NewLocationIngestWorker(streamRepo, fleetUC, "test-group", 10, 3, logger)
	return w, driverRepo, fleetUC
}

func TestLocationIngestWorker_Name(t *testing.T) {
	w, _, _ := newTestWorker(new(MockStreamRepository))
	assert.Equal(t, "location-ingest", w.Name())
}

func TestLocationIngestWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("valid event is ingested and acked", func(t *testing.T) {
		streamRepo := new(MockStreamRepository)
		w, driverRepo, fleetUC := newTestWorker(streamRepo)
		driverRepo.Put(domain.Driver{ID: 1, Username: "ivan", Active: true})

		event := domain.LocationReportEvent{
			EventID:  uuid.New(),
			DriverID: 1,
			Lat:      41.40,
			Lon:      2.16,
			Status:   "moving",
		}
		streamRepo.On("ConsumeBatch", ctx, domain.StreamLocationReports, "test-group", w.consumerName, 10).
			Return([]domain.StreamMessage{{ID: "1-0", Data: encodeEvent(t, event)}}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamLocationReports, "test-group", []string{"1-0"}).
			Return(nil)

		processed, err := w.processBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)

		snapshot, err := fleetUC.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot.Fleet, 1)
		assert.Equal(t, 41.40, snapshot.Fleet[0].Lat)

		streamRepo.AssertExpectations(t)
	})

	t.Run("malformed message is acked and skipped", func(t *testing.T) {
		streamRepo := new(MockStreamRepository)
		w, driverRepo, fleetUC := newTestWorker(streamRepo)
		driverRepo.Put(domain.Driver{ID: 1, Username: "ivan", Active: true})

		streamRepo.On("ConsumeBatch", ctx, domain.StreamLocationReports, "test-group", w.consumerName, 10).
			Return([]domain.StreamMessage{{ID: "1-0", Data: "not json"}}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamLocationReports, "test-group", []string{"1-0"}).
			Return(nil)

		processed, err := w.processBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)

		snapshot, err := fleetUC.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snapshot.Fleet)

		streamRepo.AssertExpectations(t)
	})

	t.Run("permanently invalid event is acked without ingestion", func(t *testing.T) {
		streamRepo := new(MockStreamRepository)
		w, driverRepo, fleetUC := newTestWorker(streamRepo)
		driverRepo.Put(domain.Driver{ID: 1, Username: "ivan", Active: true})

		// Неизвестный водитель - повтор не поможет
		event := domain.LocationReportEvent{
			EventID:  uuid.New(),
			DriverID: 999,
			Lat:      41.40,
			Lon:      2.16,
		}
		streamRepo.On("ConsumeBatch", ctx, domain.StreamLocationReports, "test-group", w.consumerName, 10).
			Return([]domain.StreamMessage{{ID: "2-0", Data: encodeEvent(t, event)}}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamLocationReports, "test-group", []string{"2-0"}).
			Return(nil)

		processed, err := w.processBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)

		snapshot, err := fleetUC.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snapshot.Fleet)

		streamRepo.AssertExpectations(t)
	})

	t.Run("empty queue", func(t *testing.T) {
		streamRepo := new(MockStreamRepository)
		w, _, _ := newTestWorker(streamRepo)

		streamRepo.On("ConsumeBatch", ctx, domain.StreamLocationReports, "test-group", w.consumerName, 10).
			Return(nil, nil)

		processed, err := w.processBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, processed)

		streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mixed batch acks only the settled messages", func(t *testing.T) {
		streamRepo := new(MockStreamRepository)
		w, driverRepo, _ := newTestWorker(streamRepo)
		driverRepo.Put(domain.Driver{ID: 1, Username: "ivan", Active: true})

		good := domain.LocationReportEvent{EventID: uuid.New(), DriverID: 1, Lat: 41.40, Lon: 2.16}
		badCoords := domain.LocationReportEvent{EventID: uuid.New(), DriverID: 1, Lat: 200, Lon: 2.16}

		streamRepo.On("ConsumeBatch", ctx, domain.StreamLocationReports, "test-group", w.consumerName, 10).
			Return([]domain.StreamMessage{
				{ID: "3-0", Data: encodeEvent(t, good)},
				{ID: "3-1", Data: encodeEvent(t, badCoords)},
			}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamLocationReports, "test-group", []string{"3-0", "3-1"}).
			Return(nil)

		processed, err := w.processBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, processed)

		streamRepo.AssertExpectations(t)
	})
}
