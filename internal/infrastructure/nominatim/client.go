// Package nominatim - адаптер Nominatim-совместимого геокодера.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
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

// NewClient создает адаптер геокодера. userAgent обязателен - публичные
// инстансы отклоняют запросы без идентифицирующего клиентского тега.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// geocodeItem - элемент ответа Nominatim; координаты приходят строками
type geocodeItem struct {
	DisplayName string          `json:"display_name"`
	Name        string          `json:"name"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	Address     *domain.Address `json:"address"`
}

func (i geocodeItem) toDomain() domain.GeocodeResult {
	lat, _ := strconv.ParseFloat(i.Lat, 64)
	lon, _ := strconv.ParseFloat(i.Lon, 64)
	return domain.GeocodeResult{
		DisplayName: i.DisplayName,
		Name:        i.Name,
		Lat:         lat,
		Lon:         lon,
		Address:     i.Address,
	}
}

func (c *client) Search(ctx context.Context, query string, viewbox *domain.Viewbox, limit int) ([]domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))
	if viewbox != nil {
		params.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f",
			viewbox.MinLon, viewbox.MinLat, viewbox.MaxLon, viewbox.MaxLat))
		params.Set("bounded", "0")
	}

	var items []geocodeItem
	if err := c.get(ctx, c.baseURL+"/search?"+params.Encode(), &items); err != nil {
		return nil, err
	}

	results := make([]domain.GeocodeResult, 0, len(items))
	for _, item := range items {
		results = append(results, item.toDomain())
	}
	return results, nil
}

func (c *client) Reverse(ctx context.Context, lat, lon float64, zoom int) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", strconv.Itoa(zoom))
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")

	var item geocodeItem
	if err := c.get(ctx, c.baseURL+"/reverse?"+params.Encode(), &item); err != nil {
		return nil, err
	}

	result := item.toDomain()
	return &result, nil
}

func (c *client) get(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geocoder request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("geocoder error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode geocoder response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
