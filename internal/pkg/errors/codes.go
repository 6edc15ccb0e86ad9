package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Latitude must be in [-90, 90] and longitude in [-180, 180]",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = New(
		"INVALID_STATUS",
		"Status must be one of MOVING, IDLE, STOPPED, SOS",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Radius must be a positive number of meters",
		http.StatusBadRequest,
	)

	ErrEmptyMessage = New(
		"EMPTY_MESSAGE",
		"Message body cannot be empty",
		http.StatusBadRequest,
	)

	ErrInvalidDriverID = New(
		"INVALID_DRIVER_ID",
		"Driver ID cannot be empty",
		http.StatusBadRequest,
	)

	ErrDriverNotFound = New(
		"DRIVER_NOT_FOUND",
		"Driver not found",
		http.StatusNotFound,
	)

	ErrLandmarkInvalid = New(
		"INVALID_LANDMARK",
		"Landmark requires a name and valid coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// ErrProviderUnavailable помечает любой сбой внешнего провайдера:
	// сеть, таймаут, не-2xx, битое тело ответа. На HTTP-слой не попадает -
	// фасады отдают пустой ответ корректной формы.
	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"Upstream provider is unavailable",
		http.StatusServiceUnavailable,
	)

	// ErrConcurrencyConflict зарезервирована под пессимистичную блокировку
	// инбокса; текущие реализации атомарны и её не возвращают.
	ErrConcurrencyConflict = New(
		"CONCURRENCY_CONFLICT",
		"Concurrent modification detected",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
