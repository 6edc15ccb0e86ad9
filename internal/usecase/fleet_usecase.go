package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/usecase/dto"
)

// FleetUseCase - журнал позиций и производный снимок автопарка
type FleetUseCase struct {
	locationRepo repository.LocationRepository
	driverRepo   repository.DriverRepository
	tripRepo     repository.TripHistoryRepository
	logger       *zap.Logger
}

// NewFleetUseCase - создание нового FleetUseCase
func NewFleetUseCase(
	locationRepo repository.LocationRepository,
	driverRepo repository.DriverRepository,
	tripRepo repository.TripHistoryRepository,
	logger *zap.Logger,
) *FleetUseCase {
	return &FleetUseCase{
		locationRepo: locationRepo,
		driverRepo:   driverRepo,
		tripRepo:     tripRepo,
		logger:       logger,
	}
}

// ReportLocation валидирует и дописывает позицию в журнал. Все проверки
// идут до записи: отклонённый запрос не оставляет следов в журнале.
func (uc *FleetUseCase) ReportLocation(ctx context.Context, req dto.LocationUpdateRequest) (*dto.LocationUpdateResponse, error) {
	if req.Lat == nil || req.Lon == nil || !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	status, ok := domain.ParseDriverStatus(req.Status)
	if !ok {
		return nil, errors.ErrInvalidStatus
	}

	// Анонимные "призрачные" обновления не принимаются: только известный
	// активный водитель
	exists, err := uc.driverRepo.Exists(ctx, req.DriverID)
	if err != nil {
		uc.logger.Error("Failed to check driver", zap.Int64("driver_id", req.DriverID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if !exists {
		return nil, errors.ErrDriverNotFound
	}

	record := &domain.LocationRecord{
		DriverID: req.DriverID,
		Lat:      *req.Lat,
		Lon:      *req.Lon,
		Status:   status,
	}

	// recorded_at ставит хранилище; клиентский timestamp игнорируется,
	// чтобы порядок в журнале был монотонным
	if _, err := uc.locationRepo.Append(ctx, record); err != nil {
		uc.logger.Error("Failed to append location", zap.Int64("driver_id", req.DriverID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.LocationUpdateResponse{
		RecordID:   record.ID,
		RecordedAt: record.RecordedAt,
	}, nil
}

// Snapshot собирает последнюю известную позицию каждого водителя,
// обогащая её данными для отображения. Снимок согласован в смысле
// eventual consistency: запись, добавленная после начала скана, может
// не попасть в выдачу.
func (uc *FleetUseCase) Snapshot(ctx context.Context) (*dto.FleetSnapshotResponse, error) {
	records, err := uc.locationRepo.LatestPerDriver(ctx)
	if err != nil {
		uc.logger.Error("Failed to load fleet snapshot", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	entries := make([]domain.FleetSnapshotEntry, 0, len(records))
	for _, rec := range records {
		entry := domain.FleetSnapshotEntry{
			DriverID:   rec.DriverID,
			Lat:        rec.Lat,
			Lon:        rec.Lon,
			Status:     rec.Status,
			RecordedAt: rec.RecordedAt,
		}

		driver, err := uc.driverRepo.GetByID(ctx, rec.DriverID)
		if err != nil {
			uc.logger.Error("Failed to enrich snapshot entry",
				zap.Int64("driver_id", rec.DriverID),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if driver != nil {
			entry.Username = driver.Username
			entry.FullName = driver.FullName
			entry.PlateNo = driver.PlateNo
		}

		entries = append(entries, entry)
	}

	sortSnapshot(entries)

	return &dto.FleetSnapshotResponse{
		Fleet: entries,
		Total: len(entries),
	}, nil
}

// sortSnapshot упорядочивает снимок по username, затем по driver_id -
// стабильный порядок для табличного отображения
func sortSnapshot(entries []domain.FleetSnapshotEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Username != entries[j].Username {
			return entries[i].Username < entries[j].Username
		}
		return entries[i].DriverID < entries[j].DriverID
	})
}

// ListDrivers возвращает активный состав для диспетчерской
func (uc *FleetUseCase) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	drivers, err := uc.driverRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list drivers", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return drivers, nil
}

// LocationHistory возвращает журнал позиций одного водителя, от новых
// к старым, опционально отфильтрованный по статусам
func (uc *FleetUseCase) LocationHistory(ctx context.Context, driverID int64, statuses []string, limit int) (*dto.LocationHistoryResponse, error) {
	if driverID <= 0 {
		return nil, errors.ErrInvalidDriverID
	}
	// Фильтр сравнивается с каноническими значениями журнала, поэтому
	// вход нормализуется: status=moving должен находить MOVING
	var normalized []string
	for _, s := range statuses {
		status, ok := domain.ParseDriverStatus(s)
		if !ok {
			return nil, errors.ErrInvalidStatus
		}
		normalized = append(normalized, string(status))
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	records, err := uc.locationRepo.HistoryByDriver(ctx, driverID, normalized, limit)
	if err != nil {
		uc.logger.Error("Failed to load location history",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.LocationHistoryResponse{Records: records, Total: len(records)}, nil
}

// AppendTripHistory дописывает запись в историю маршрутов водителя
func (uc *FleetUseCase) AppendTripHistory(ctx context.Context, driverID int64, req dto.TripHistoryRequest) error {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLon) ||
		!utils.ValidateCoordinates(req.EndLat, req.EndLon) {
		return errors.ErrInvalidCoordinates
	}

	exists, err := uc.driverRepo.Exists(ctx, driverID)
	if err != nil {
		return errors.ErrDatabaseError
	}
	if !exists {
		return errors.ErrDriverNotFound
	}

	entry := &domain.TripHistoryEntry{
		DriverID: driverID,
		StartLat: req.StartLat,
		StartLon: req.StartLon,
		EndLat:   req.EndLat,
		EndLon:   req.EndLon,
		Profile:  domain.ParseRouteProfile(req.Profile),
	}

	if err := uc.tripRepo.Append(ctx, entry); err != nil {
		uc.logger.Error("Failed to append trip history",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// ListTripHistory возвращает историю маршрутов водителя, от новых к старым
func (uc *FleetUseCase) ListTripHistory(ctx context.Context, driverID int64, limit int) (*dto.TripHistoryResponse, error) {
	if driverID <= 0 {
		return nil, errors.ErrInvalidDriverID
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	trips, err := uc.tripRepo.ListByDriver(ctx, driverID, limit)
	if err != nil {
		uc.logger.Error("Failed to list trip history",
			zap.Int64("driver_id", driverID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.TripHistoryResponse{Trips: trips, Total: len(trips)}, nil
}
