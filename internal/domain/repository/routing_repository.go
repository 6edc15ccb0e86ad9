package repository

import (
	"context"

	"github.com/fleet-backend/internal/domain"
)

// RoutingProvider - адаптер одного внешнего сервиса маршрутизации.
// Адаптер сам переводит канонический профиль в свой токен и отбрасывает
// неподдерживаемые опции.
type RoutingProvider interface {
	// Name возвращает идентификатор провайдера для конфигурации и логов
	Name() string

	// SupportsOptions сообщает, понимает ли провайдер опции маршрута
	// (платные дороги, магистрали, трафик). Фасад ставит таких провайдеров
	// в начало очереди, когда опции заданы.
	SupportsOptions() bool

	// Route строит маршрут. Любой сбой (сеть, не-2xx, битое тело, не-Ok код)
	// возвращается ошибкой - решение о фолбэке принимает фасад.
	Route(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error)
}
