package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	cancelReservationHandler "github.com/m04kA/SMC-CampsiteService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-CampsiteService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-CampsiteService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-CampsiteService/internal/api/handlers/get_reservation"
	modifyReservationHandler "github.com/m04kA/SMC-CampsiteService/internal/api/handlers/modify_reservation"
	"github.com/m04kA/SMC-CampsiteService/internal/api/middleware"
	"github.com/m04kA/SMC-CampsiteService/internal/config"
	availabilityCache "github.com/m04kA/SMC-CampsiteService/internal/infra/cache/availability"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
	"github.com/m04kA/SMC-CampsiteService/internal/service/dates"
	reservationsService "github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
	cancelReservationUC "github.com/m04kA/SMC-CampsiteService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-CampsiteService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-CampsiteService/internal/usecase/get_availability"
	modifyReservationUC "github.com/m04kA/SMC-CampsiteService/internal/usecase/modify_reservation"
	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampsiteService/pkg/logger"
	"github.com/m04kA/SMC-CampsiteService/pkg/metrics"
	"github.com/m04kA/SMC-CampsiteService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CampsiteService/pkg/txmanager"
)

const configPath = "config.toml"

// eventPublisher публикатор событий, который можно закрыть при остановке
type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CampsiteService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Reservation.TimeLocation()
	if err != nil {
		log.Fatal("Invalid reservation location: %v", err)
	}

	// Метрики (nil коллектор допустим, методы записи ничего не делают)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	dialect, err := psqlbuilder.ParseDialect(cfg.Database.Driver)
	if err != nil {
		log.Fatal("Unsupported database driver: %v", err)
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := wrappedDB.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatal("Failed to ping database: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	// Репозиторий и транзакции
	reservationRepository := reservationRepo.NewRepository(wrappedDB, dialect)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	if cfg.Database.AutoMigrate {
		if err := reservationRepository.Migrate(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	// Кэш доступности
	var (
		cache       getAvailabilityUC.Cache = availabilityCache.Noop{}
		redisClient *redis.Client
	)
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, availability cache disabled: %v", err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			cache = availabilityCache.NewCache(redisClient, cfg.Cache.TTL(), cfg.Cache.KeyPrefix)
			log.Info("Availability cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
		}
	}

	// Публикация событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		p, err := events.Dial(cfg.Events.URL, cfg.Events.Exchange, cfg.Events.RoutingPrefix, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		publisher = p
		log.Info("Reservation events are published to exchange %s", cfg.Events.Exchange)
	}

	// Сервисы
	timeProvider := &dates.RealTimeProvider{}
	datesSvc := dates.NewService(cfg.Reservation.Params(), timeProvider, location)
	reservationSvc := reservationsService.NewService(reservationRepository, datesSvc, timeProvider, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationSvc, datesSvc, cache, metricsCollector, log)
	createReservationUseCase := createReservationUC.NewUseCase(reservationSvc, publisher, metricsCollector, timeProvider, log)
	modifyReservationUseCase := modifyReservationUC.NewUseCase(reservationSvc, txMgr, publisher, metricsCollector, timeProvider, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(reservationSvc, txMgr, publisher, metricsCollector, timeProvider, log)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	modifyReservation := modifyReservationHandler.NewHandler(modifyReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// /availability регистрируется раньше /{reservationId}
	r.HandleFunc("/reservations/availability", getAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{reservationId}", modifyReservation.Handle).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         cfg.CORS.MaxAge,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(middleware.RequestID(r)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
