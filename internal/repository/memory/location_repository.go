// Package memory содержит встроенные реализации хранилищ.
// Используются в dev-режиме без Postgres и в тестах контрактов хранилищ.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type locationRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records []domain.LocationRecord
	// latest инкрементально держит argmax(id) на водителя, чтобы snapshot
	// не сканировал весь журнал
	latest map[int64]int // driver_id -> индекс в records
}

// NewLocationRepository создает журнал позиций в памяти
func NewLocationRepository() repository.LocationRepository {
	return &locationRepository{
		latest: make(map[int64]int),
	}
}

func (r *locationRepository) Append(_ context.Context, record *domain.LocationRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	record.ID = r.nextID
	record.RecordedAt = time.Now().UTC()

	r.records = append(r.records, *record)
	r.latest[record.DriverID] = len(r.records) - 1

	return record.ID, nil
}

func (r *locationRepository) LatestPerDriver(_ context.Context) ([]domain.LocationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.LocationRecord, 0, len(r.latest))
	for _, idx := range r.latest {
		result = append(result, r.records[idx])
	}
	return result, nil
}

func (r *locationRepository) HistoryByDriver(_ context.Context, driverID int64, statuses []string, limit int) ([]domain.LocationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[domain.DriverStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[domain.DriverStatus(s)] = true
	}

	var result []domain.LocationRecord
	for i := len(r.records) - 1; i >= 0 && len(result) < limit; i-- {
		rec := r.records[i]
		if rec.DriverID != driverID {
			continue
		}
		if len(wanted) > 0 && !wanted[rec.Status] {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}
