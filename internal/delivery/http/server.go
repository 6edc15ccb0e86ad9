package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/fleet-backend/internal/config"
	"github.com/fleet-backend/internal/delivery/http/handler"
	"github.com/fleet-backend/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	fleetHandler    *handler.FleetHandler
	messageHandler  *handler.MessageHandler
	routeHandler    *handler.RouteHandler
	placeHandler    *handler.PlaceHandler
	searchHandler   *handler.SearchHandler
	landmarkHandler *handler.LandmarkHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	fleetHandler *handler.FleetHandler,
	messageHandler *handler.MessageHandler,
	routeHandler *handler.RouteHandler,
	placeHandler *handler.PlaceHandler,
	searchHandler *handler.SearchHandler,
	landmarkHandler *handler.LandmarkHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Fleet Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		fleetHandler:    fleetHandler,
		messageHandler:  messageHandler,
		routeHandler:    routeHandler,
		placeHandler:    placeHandler,
		searchHandler:   searchHandler,
		landmarkHandler: landmarkHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Fleet routes
	api.Post("/driver/location", s.fleetHandler.ReportLocation)
	api.Get("/fleet/status", s.fleetHandler.FleetStatus)
	api.Get("/drivers", s.fleetHandler.ListDrivers)
	api.Get("/driver/:driver_id/locations", s.fleetHandler.LocationHistory)
	api.Post("/driver/:driver_id/history", s.fleetHandler.AppendTripHistory)
	api.Get("/driver/:driver_id/history", s.fleetHandler.ListTripHistory)

	// Message routes
	api.Post("/dispatch/messages", s.messageHandler.Send)
	api.Get("/driver/:driver_id/messages", s.messageHandler.FetchUnread)

	// Routing
	api.Get("/route", s.routeHandler.Route)

	// Geocoding
	api.Get("/search", s.searchHandler.Search)
	api.Get("/reverse-geocode", s.searchHandler.ReverseGeocode)

	// Places
	api.Get("/places", s.placeHandler.Search)

	// Landmarks
	api.Get("/landmarks", s.landmarkHandler.List)
	api.Post("/landmarks", s.landmarkHandler.Create)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
