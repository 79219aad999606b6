package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/emergency_dispatch_system/internal/clients"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/eventbrite"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/mapbox"
	"github.com/shenikar/emergency_dispatch_system/internal/clients/openweather"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	v1 "github.com/shenikar/emergency_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/emergency_dispatch_system/internal/hotspot"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/repository"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/simulation"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	"github.com/shenikar/emergency_dispatch_system/pkg/logger"
	"github.com/shenikar/emergency_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/emergency_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/emergency_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch System API
// @version 1.0
// @description Ambulance dispatch simulation with live city data.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newEngine собирает движок симуляции из конфигурации
func newEngine(cfg config.SimulationConfig, log *logrus.Logger) (*simulation.Engine, error) {
	sw := models.Point{Lat: cfg.BoundsSouthWest[0], Lng: cfg.BoundsSouthWest[1]}
	ne := models.Point{Lat: cfg.BoundsNorthEast[0], Lng: cfg.BoundsNorthEast[1]}
	bounds, err := geo.NewBoundingBox(sw, ne)
	if err != nil {
		return nil, fmt.Errorf("invalid simulation bounds: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	hotspots := hotspot.Registry()

	engine := simulation.NewEngine(simulation.Options{
		Bounds: bounds,
		Movement: simulation.MovementConfig{
			StepsPerLeg:   cfg.StepsPerLeg,
			StepInterval:  cfg.StepInterval,
			OnSceneDwell:  cfg.OnSceneDwell,
			HospitalDwell: cfg.HospitalDwell,
		},
		Assigner:  dispatch.NewAssigner(cfg.SpeedKmph, cfg.MinimumEtaMinutes, time.Now),
		Rand:      rng,
		Logger:    log,
		Fleet:     simulation.BuildFleet(simulation.DefaultRoster(), hotspots, rng),
		Hospitals: simulation.DefaultHospitals(),
		Hotspots:  hotspots,
	})
	if len(engine.Hospitals()) == 0 {
		return nil, fmt.Errorf("no hospitals inside simulation bounds %v - %v", sw, ne)
	}
	if len(engine.Fleet()) == 0 {
		return nil, fmt.Errorf("no units inside simulation bounds %v - %v", sw, ne)
	}
	engine.Generator().HotspotBias = cfg.HotspotBias

	center := bounds.Center()
	log.WithFields(logrus.Fields{
		"center_lat": center.Lat,
		"center_lng": center.Lng,
		"area_km2":   math.Round(bounds.AreaKm2()),
		"units":      len(engine.Fleet()),
		"hospitals":  len(engine.Hospitals()),
	}).Info("Simulation engine configured")
	return engine, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	dispatchRepo := repository.NewDispatchRepository(dbpool)
	cache := repository.NewRedisCache(redisClient)

	// Клиенты внешних API
	httpClient := clients.NewHTTPClient(cfg.ClientTimeout)
	weatherClient := openweather.NewClient(cfg.OpenWeatherAPIKey, "", httpClient)
	mapboxClient := mapbox.NewClient(cfg.MapboxToken, "", httpClient)
	eventsClient := eventbrite.NewClient(cfg.EventbriteToken, "", httpClient)

	// Инициализация сервисов
	predictor := hotspot.NewPredictor(rand.New(rand.NewSource(cfg.Simulation.Seed+1)), hotspot.Registry())
	cityService := service.NewCityService(
		weatherClient,
		mapboxClient,
		eventsClient,
		cache,
		predictor,
		hotspot.Registry(),
		service.CityConfig{
			DefaultCity:   cfg.DefaultCity,
			WeatherTTL:    cfg.WeatherCacheTTL,
			TrafficTTL:    cfg.TrafficCacheTTL,
			RouteTTL:      cfg.RouteCacheTTL,
			EventsTTL:     cfg.EventsCacheTTL,
			PredictionTTL: cfg.PredictionCacheTTL,
		},
		log,
	)

	// Движок симуляции и его цикл
	engine, err := newEngine(cfg.Simulation, log)
	if err != nil {
		log.Fatalf("Failed to build simulation engine: %v", err)
	}
	recorder := service.NewEventRecorder(dispatchRepo, webhookPublisher, log)
	runner := simulation.NewRunner(engine, simulation.RunnerConfig{
		TickInterval:     cfg.Simulation.TickInterval,
		GenerateInterval: cfg.Simulation.GenerateInterval,
		RefreshInterval:  cfg.Simulation.RefreshInterval,
		AutoGenerate:     cfg.Simulation.AutoGenerate,
	}, cityService, recorder, log)
	go runner.Run(ctx)

	dispatchService := service.NewDispatchService(runner, dispatchRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, cityService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port": cfg.HTTPPort,
		"seed": cfg.Simulation.Seed,
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Останавливаем цикл симуляции и воркер вебхуков
	cancel()

	log.Info("Server gracefully stopped")
}
