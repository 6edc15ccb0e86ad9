package location

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/usecase/dto"
	"github.com/fleet-backend/internal/worker"
)

const emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста

// LocationIngestWorker переливает события позиций из Redis Stream в
// журнал. Полевые трекеры публикуют события в стрим вместо HTTP - воркер
// прогоняет их через ту же валидацию, что и HTTP-приём.
type LocationIngestWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	fleetUC      *usecase.FleetUseCase
	consumerName string
	batchSize    int
	maxRetries   int
}

// NewLocationIngestWorker создает новый LocationIngestWorker
func NewLocationIngestWorker(
	streamRepo repository.StreamRepository,
	fleetUC *usecase.FleetUseCase,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *LocationIngestWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = 20
	}

	return &LocationIngestWorker{
		BaseWorker:   worker.NewBaseWorker("location-ingest", consumerGroup, logger),
		streamRepo:   streamRepo,
		fleetUC:      fleetUC,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *LocationIngestWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting LocationIngestWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamLocationReports, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку событий.
// Возвращает количество прочитанных сообщений.
func (w *LocationIngestWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamLocationReports,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if w.ingest(ctx, event) {
			ackIDs = append(ackIDs, msg.ID)
		}
		// Не подтверждённые сообщения будут переданы заново
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamLocationReports, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	return len(messages), nil
}

// ingest прогоняет событие через обычную валидацию приёма позиции.
// Возвращает true, когда сообщение можно подтверждать: успех либо
// ошибка, которую повтор не исправит (битые координаты, неизвестный
// водитель).
func (w *LocationIngestWorker) ingest(ctx context.Context, event *domain.LocationReportEvent) bool {
	logger := w.Logger()

	lat, lon := event.Lat, event.Lon
	req := dto.LocationUpdateRequest{
		DriverID: event.DriverID,
		Lat:      &lat,
		Lon:      &lon,
		Status:   event.Status,
	}

	_, err := w.fleetUC.ReportLocation(ctx, req)
	if err == nil {
		return true
	}

	if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code != apperrors.ErrDatabaseError.Code {
		logger.Warn("Dropping invalid location event",
			zap.String("event_id", event.EventID.String()),
			zap.Int64("driver_id", event.DriverID),
			zap.String("code", appErr.Code))
		return true
	}

	logger.Error("Failed to ingest location event, will retry",
		zap.String("event_id", event.EventID.String()),
		zap.Int64("driver_id", event.DriverID),
		zap.Error(err))
	return false
}

// parseMessage парсит сообщение из стрима в LocationReportEvent
func (w *LocationIngestWorker) parseMessage(msg domain.StreamMessage) (*domain.LocationReportEvent, error) {
	var event domain.LocationReportEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
