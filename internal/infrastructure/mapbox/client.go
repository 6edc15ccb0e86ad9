// Package mapbox - адаптер Mapbox Directions API. Коммерческий провайдер
// с пробками и исключением платных дорог/магистралей.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/domain"
	"github.com/fleet-backend/internal/domain/repository"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewClient создает адаптер Mapbox Directions
func NewClient(baseURL, accessToken string, timeout time.Duration, logger *zap.Logger) repository.RoutingProvider {
	return &client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		accessToken: accessToken,
		logger:      logger,
	}
}

func (c *client) Name() string {
	return "mapbox"
}

// SupportsOptions - Mapbox понимает exclude и traffic-профиль
func (c *client) SupportsOptions() bool {
	return true
}

// profileToken переводит канонический профиль в словарь Mapbox.
// traffic повышает driving до driving-traffic; для walking/cycling опция
// смысла не имеет и отбрасывается.
func profileToken(profile domain.RouteProfile, opts domain.RouteOptions) string {
	switch profile {
	case domain.ProfileWalking:
		return "mapbox/walking"
	case domain.ProfileCycling:
		return "mapbox/cycling"
	default:
		if opts.Traffic {
			return "mapbox/driving-traffic"
		}
		return "mapbox/driving"
	}
}

func (c *client) Route(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	// lon,lat на проводе
	coords := fmt.Sprintf("%f,%f;%f,%f",
		query.Start.Lon, query.Start.Lat,
		query.End.Lon, query.End.Lat,
	)

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("geometries", "polyline")
	params.Set("overview", "full")
	if query.Steps {
		params.Set("steps", "true")
	}

	var exclude []string
	if query.Options.AvoidTolls {
		exclude = append(exclude, "toll")
	}
	if query.Options.AvoidHighways {
		exclude = append(exclude, "motorway")
	}
	if len(exclude) > 0 {
		params.Set("exclude", strings.Join(exclude, ","))
	}

	reqURL := fmt.Sprintf("%s/directions/v5/%s/%s?%s",
		c.baseURL,
		profileToken(query.Profile, query.Options),
		coords,
		params.Encode(),
	)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("profile", string(query.Profile)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute Mapbox request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d", resp.StatusCode)
	}

	var result domain.RouteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode Mapbox response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Code != domain.RouteCodeOk {
		return nil, fmt.Errorf("mapbox returned code: %s", result.Code)
	}

	result.Provider = c.Name()
	return &result, nil
}
