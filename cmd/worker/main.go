package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fleet-backend/internal/config"
	"github.com/fleet-backend/internal/pkg/logger"
	"github.com/fleet-backend/internal/repository/cache"
	"github.com/fleet-backend/internal/repository/postgres"
	redisRepo "github.com/fleet-backend/internal/repository/redis"
	"github.com/fleet-backend/internal/usecase"
	"github.com/fleet-backend/internal/worker"
	"github.com/fleet-backend/internal/worker/location"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Location Ingest Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	locationRepo := postgres.NewLocationRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	tripRepo := postgres.NewTripHistoryRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	fleetUC := usecase.NewFleetUseCase(locationRepo, driverRepo, tripRepo, log)

	// 7. Initialize workers
	ingestWorker := location.NewLocationIngestWorker(
		streamRepo,
		fleetUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(ingestWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
