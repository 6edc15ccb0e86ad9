// Package overpass - адаптер Overpass-совместимого POI-провайдера.
package overpass

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
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient создает адаптер POI-провайдера
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *zap.Logger) repository.PlaceRepository {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// BuildQL сериализует составной запрос в Overpass QL: объединение
// node-предикатов, каждый с (around:radius,lat,lon). Радиус уходит как
// есть - лимиты провайдера не проверяются заранее, отказ придёт ответом.
func BuildQL(query domain.PlaceQuery) string {
	var sb strings.Builder
	sb.WriteString("[out:json][timeout:25];(")
	for _, f := range query.Filters {
		sb.WriteString(fmt.Sprintf("node[%q=%q](around:%d,%f,%f);",
			f.Key, f.Value, query.RadiusMeters, query.Center.Lat, query.Center.Lon))
	}
	sb.WriteString(");out body;")
	return sb.String()
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags"`
}

func (c *client) Search(ctx context.Context, query domain.PlaceQuery) ([]domain.PlaceElement, error) {
	ql := BuildQL(query)

	c.logger.Debug("Calling Overpass API",
		zap.Int("filters", len(query.Filters)),
		zap.Int("radius_m", query.RadiusMeters))

	form := url.Values{}
	form.Set("data", ql)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute Overpass request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass error: status %d", resp.StatusCode)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Error("Failed to decode Overpass response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	elements := make([]domain.PlaceElement, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		lat, lon := el.Lat, el.Lon
		if el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}
		elements = append(elements, domain.PlaceElement{
			ID:   el.ID,
			Lat:  lat,
			Lon:  lon,
			Tags: el.Tags,
		})
	}

	return elements, nil
}
