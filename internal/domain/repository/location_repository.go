package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// LocationRepository - append-only журнал позиций.
// Append присваивает записи порядковый ID и серверное время; записи
// никогда не обновляются и не удаляются.
type LocationRepository interface {
	// Append сохраняет новую запись и возвращает её ID
	Append(ctx context.Context, record *domain.LocationRecord) (int64, error)

	// LatestPerDriver возвращает для каждого водителя запись с максимальным
	// ID (последнюю вставленную, а не последнюю по timestamp - метки времени
	// могут совпадать)
	LatestPerDriver(ctx context.Context) ([]domain.LocationRecord, error)

	// HistoryByDriver возвращает записи водителя, опционально отфильтрованные
	// по статусам, от новых к старым
	HistoryByDriver(ctx context.Context, driverID int64, statuses []string, limit int) ([]domain.LocationRecord, error)
}
