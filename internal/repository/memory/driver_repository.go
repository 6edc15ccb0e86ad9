package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fleet-backend/internal/domain"
)

// DriverRepository - реестр водителей в памяти. Экспортируется конкретным
// типом: dev-режим и тесты наполняют его через Put.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int64]domain.Driver
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[int64]domain.Driver),
	}
}

// Put добавляет или заменяет водителя
func (r *DriverRepository) Put(driver domain.Driver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[driver.ID] = driver
}

func (r *DriverRepository) GetByID(_ context.Context, id int64) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, ok := r.drivers[id]
	if !ok {
		return nil, nil
	}
	return &driver, nil
}

func (r *DriverRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, ok := r.drivers[id]
	return ok && driver.Active, nil
}

func (r *DriverRepository) List(_ context.Context) ([]domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		if d.Active {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}
