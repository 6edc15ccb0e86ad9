package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/repository/memory"
)

func TestLocationRepository_Append(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLocationRepository()

	rec := &domain.LocationRecord{DriverID: 1, Lat: 41.4, Lon: 2.16, Status: domain.StatusMoving}
	id, err := repo.Append(ctx, rec)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, rec.ID)
	assert.False(t, rec.RecordedAt.IsZero(), "append must stamp server time")

	// ID - монотонный порядковый номер вставки
	rec2 := &domain.LocationRecord{DriverID: 1, Lat: 41.5, Lon: 2.17, Status: domain.StatusIdle}
	id2, err := repo.Append(ctx, rec2)
	require.NoError(t, err)
	assert.Equal(t, id+1, id2)
}

func TestLocationRepository_LatestPerDriver(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLocationRepository()

	t.Run("empty log yields empty snapshot", func(t *testing.T) {
		records, err := repo.LatestPerDriver(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("last inserted record wins per driver", func(t *testing.T) {
		// Водитель 1: две записи, водитель 2: одна
		_, err := repo.Append(ctx, &domain.LocationRecord{DriverID: 1, Lat: 1, Lon: 1, Status: domain.StatusMoving})
		require.NoError(t, err)
		_, err = repo.Append(ctx, &domain.LocationRecord{DriverID: 2, Lat: 2, Lon: 2, Status: domain.StatusIdle})
		require.NoError(t, err)
		_, err = repo.Append(ctx, &domain.LocationRecord{DriverID: 1, Lat: 9, Lon: 9, Status: domain.StatusSOS})
		require.NoError(t, err)

		records, err := repo.LatestPerDriver(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)

		byDriver := make(map[int64]domain.LocationRecord)
		for _, rec := range records {
			byDriver[rec.DriverID] = rec
		}

		assert.Equal(t, 9.0, byDriver[1].Lat)
		assert.Equal(t, domain.StatusSOS, byDriver[1].Status)
		assert.Equal(t, 2.0, byDriver[2].Lat)
	})
}

func TestLocationRepository_HistoryByDriver(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLocationRepository()

	statuses := []domain.DriverStatus{
		domain.StatusMoving, domain.StatusIdle, domain.StatusMoving,
		domain.StatusStopped, domain.StatusSOS,
	}
	for i, status := range statuses {
		_, err := repo.Append(ctx, &domain.LocationRecord{
			DriverID: 5, Lat: float64(i), Lon: float64(i), Status: status,
		})
		require.NoError(t, err)
	}
	// Чужая запись в выборку не попадает
	_, err := repo.Append(ctx, &domain.LocationRecord{DriverID: 6, Lat: 100, Lon: 100, Status: domain.StatusMoving})
	require.NoError(t, err)

	t.Run("newest first without filter", func(t *testing.T) {
		records, err := repo.HistoryByDriver(ctx, 5, nil, 100)
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, domain.StatusSOS, records[0].Status)
		assert.Equal(t, domain.StatusMoving, records[4].Status)
	})

	t.Run("status filter", func(t *testing.T) {
		records, err := repo.HistoryByDriver(ctx, 5, []string{"MOVING"}, 100)
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, rec := range records {
			assert.Equal(t, domain.StatusMoving, rec.Status)
		}
	})

	t.Run("limit respected", func(t *testing.T) {
		records, err := repo.HistoryByDriver(ctx, 5, nil, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
