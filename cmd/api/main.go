package main

// @title Fleet Backend API
// @version 1.0.0
// @description Бэкенд флит-трекинга. Принимает позиции водителей в append-only журнал, отдаёт снимок автопарка (последняя позиция каждого водителя), доставляет диспетчерские сообщения с семантикой "ровно одна выборка", строит маршруты через внешние сервисы с автоматическим фолбэком и ищет места по каноническим категориям.

// @contact.name API Support
// @contact.email support@fleet-backend.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/fleet-backend/docs"
	"github.com/fleet-backend/internal/config"
	httpDelivery "github.com/fleet-backend/internal/delivery/http"
	"github.com/fleet-backend/internal/delivery/http/handler"
	"github.com/fleet-backend/internal/domain/repository"
	"github.com/fleet-backend/internal/infrastructure/mapbox"
	"github.com/fleet-backend/internal/infrastructure/nominatim"
	"github.com/fleet-backend/internal/infrastructure/osrm"
	"github.com/fleet-backend/internal/infrastructure/overpass"
	"github.com/fleet-backend/internal/pkg/logger"
	"github.com/fleet-backend/internal/repository/cache"
	"github.com/fleet-backend/internal/repository/memory"
	"github.com/fleet-backend/internal/repository/postgres"
	"github.com/fleet-backend/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Fleet Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Storage: PostgreSQL, либо in-memory при пустом DB_HOST
	// (локальная разработка и демо без базы)
	var (
		locationRepo repository.LocationRepository
		messageRepo  repository.MessageRepository
		driverRepo   repository.DriverRepository
		landmarkRepo repository.LandmarkRepository
		tripRepo     repository.TripHistoryRepository
	)

	if cfg.Database.Host != "" {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		locationRepo = postgres.NewLocationRepository(db)
		messageRepo = postgres.NewMessageRepository(db)
		driverRepo = postgres.NewDriverRepository(db)
		landmarkRepo = postgres.NewLandmarkRepository(db)
		tripRepo = postgres.NewTripHistoryRepository(db)
	} else {
		log.Warn("DB_HOST is empty, using in-memory storage")
		locationRepo = memory.NewLocationRepository()
		messageRepo = memory.NewMessageRepository()
		landmarkRepo = memory.NewLandmarkRepository()
		tripRepo = memory.NewTripHistoryRepository()

		drivers := memory.NewDriverRepository()
		seeded := memory.SeedDemoDrivers(drivers)
		driverRepo = drivers
		log.Info("Seeded demo driver roster", zap.Int("drivers", seeded))
	}

	// 4. Redis cache (опционально: без REDIS_HOST работаем без кэша)
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		log.Warn("REDIS_HOST is empty, response caching disabled")
	}

	// 5. External providers
	providersByName := map[string]repository.RoutingProvider{
		"osrm": osrm.NewClient(cfg.Providers.OSRMBaseURL, cfg.Providers.RequestTimeout, log),
		"mapbox": mapbox.NewClient(
			cfg.Providers.MapboxBaseURL,
			cfg.Providers.MapboxAccessToken,
			cfg.Providers.RequestTimeout,
			log,
		),
	}

	var routingProviders []repository.RoutingProvider
	for _, name := range cfg.Providers.RoutePreference {
		provider, ok := providersByName[name]
		if !ok {
			log.Warn("Unknown routing provider in ROUTE_PROVIDERS, skipping", zap.String("name", name))
			continue
		}
		if name == "mapbox" && cfg.Providers.MapboxAccessToken == "" {
			log.Warn("Mapbox access token is not set, provider disabled")
			continue
		}
		routingProviders = append(routingProviders, provider)
	}
	if len(routingProviders) == 0 {
		log.Fatal("No routing providers configured")
	}

	geocodeRepo := nominatim.NewClient(
		cfg.Providers.NominatimBaseURL,
		cfg.Providers.ClientTag,
		cfg.Providers.RequestTimeout,
		log,
	)
	placeRepo := overpass.NewClient(
		cfg.Providers.OverpassBaseURL,
		cfg.Providers.ClientTag,
		cfg.Providers.RequestTimeout,
		log,
	)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	fleetUC := usecase.NewFleetUseCase(locationRepo, driverRepo, tripRepo, log)
	messageUC := usecase.NewMessageUseCase(messageRepo, driverRepo, log)
	routingUC := usecase.NewRoutingUseCase(routingProviders, cacheRepo, cfg.Cache.RouteCacheTTL, log)
	placeUC := usecase.NewPlaceUseCase(placeRepo, log)
	searchUC := usecase.NewSearchUseCase(geocodeRepo, cacheRepo, cfg.Cache.GeocodeCacheTTL, log)
	landmarkUC := usecase.NewLandmarkUseCase(landmarkRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	fleetHandler := handler.NewFleetHandler(fleetUC, log)
	messageHandler := handler.NewMessageHandler(messageUC, log)
	routeHandler := handler.NewRouteHandler(routingUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	landmarkHandler := handler.NewLandmarkHandler(landmarkUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		fleetHandler,
		messageHandler,
		routeHandler,
		placeHandler,
		searchHandler,
		landmarkHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
