// Package osrm - адаптер OSRM-совместимого сервиса маршрутизации.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

// profileTokens - перевод канонического профиля в словарь OSRM.
// Отдельного мотоциклетного профиля у публичного OSRM нет - едем как
// автомобиль.
var profileTokens = map[domain.RouteProfile]string{
	domain.ProfileDriving:    "driving",
	domain.ProfileWalking:    "foot",
	domain.ProfileCycling:    "bike",
	domain.ProfileMotorcycle: "driving",
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает адаптер OSRM. OSRM не знает опций tolls/highways/traffic -
// они молча отбрасываются.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) repository.RoutingProvider {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (c *client) Name() string {
	return "osrm"
}

// SupportsOptions - OSRM отбрасывает опции маршрута
func (c *client) SupportsOptions() bool {
	return false
}

func (c *client) Route(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	token, ok := profileTokens[query.Profile]
	if !ok {
		token = profileTokens[domain.ProfileDriving]
	}

	// Координаты на проводе в порядке lon,lat - обратном нашему API
	coords := fmt.Sprintf("%f,%f;%f,%f",
		query.Start.Lon, query.Start.Lat,
		query.End.Lon, query.End.Lat,
	)

	params := url.Values{}
	params.Set("overview", "full")
	if query.Steps {
		params.Set("steps", "true")
	}

	reqURL := fmt.Sprintf("%s/route/v1/%s/%s?%s", c.baseURL, token, coords, params.Encode())

	c.logger.Debug("Calling OSRM route API",
		zap.String("profile", token),
		zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute OSRM request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OSRM returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("osrm error: status %d", resp.StatusCode)
	}

	var result domain.RouteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode OSRM response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Code != domain.RouteCodeOk {
		return nil, fmt.Errorf("osrm returned code: %s", result.Code)
	}

	result.Provider = c.Name()
	return &result, nil
}
