package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
	Providers ProvidersConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteCacheTTL   time.Duration
	GeocodeCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
	BatchSize     int
}

// ProvidersConfig - внешние картографические провайдеры.
// RoutePreference задаёт порядок опроса роутинг-провайдеров.
type ProvidersConfig struct {
	RequestTimeout  time.Duration
	RoutePreference []string

	OSRMBaseURL string

	MapboxBaseURL     string
	MapboxAccessToken string

	NominatimBaseURL string
	OverpassBaseURL  string

	// ClientTag уходит в User-Agent - публичные инстансы Nominatim/Overpass
	// требуют идентифицирующий заголовок
	ClientTag string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL:   time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
		},
		Providers: ProvidersConfig{
			RequestTimeout:    time.Duration(viper.GetInt("PROVIDER_REQUEST_TIMEOUT")) * time.Second,
			RoutePreference:   parseList(viper.GetString("ROUTE_PROVIDERS")),
			OSRMBaseURL:       viper.GetString("OSRM_BASE_URL"),
			MapboxBaseURL:     viper.GetString("MAPBOX_BASE_URL"),
			MapboxAccessToken: viper.GetString("MAPBOX_ACCESS_TOKEN"),
			NominatimBaseURL:  viper.GetString("NOMINATIM_BASE_URL"),
			OverpassBaseURL:   viper.GetString("OVERPASS_BASE_URL"),
			ClientTag:         viper.GetString("PROVIDER_CLIENT_TAG"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 60 * time.Second
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "fleet-location-ingest"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.Providers.RequestTimeout == 0 {
		// Рекомендованное окно 5-10s: таймаут трактуется как недоступность
		// провайдера, не как фатальная ошибка
		cfg.Providers.RequestTimeout = 8 * time.Second
	}
	if len(cfg.Providers.RoutePreference) == 0 {
		cfg.Providers.RoutePreference = []string{"osrm", "mapbox"}
	}
	if cfg.Providers.OSRMBaseURL == "" {
		cfg.Providers.OSRMBaseURL = "https://router.project-osrm.org"
	}
	if cfg.Providers.MapboxBaseURL == "" {
		cfg.Providers.MapboxBaseURL = "https://api.mapbox.com"
	}
	if cfg.Providers.NominatimBaseURL == "" {
		cfg.Providers.NominatimBaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Providers.OverpassBaseURL == "" {
		cfg.Providers.OverpassBaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Providers.ClientTag == "" {
		cfg.Providers.ClientTag = "fleet-backend/1.0"
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
