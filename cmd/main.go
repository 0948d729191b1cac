package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	getAttendanceHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/get_attendance"
	getOverviewHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/get_overview"
	getRouteHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/get_route"
	getSeatMapHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/get_seat_map"
	listRoutesHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/list_routes"
	loginHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/login"
	submitAttendanceHandler "github.com/m04kA/SMC-BusSeating/internal/api/handlers/submit_attendance"
	"github.com/m04kA/SMC-BusSeating/internal/api/middleware"
	"github.com/m04kA/SMC-BusSeating/internal/config"
	"github.com/m04kA/SMC-BusSeating/internal/infra/broker/rabbitmq"
	attendanceRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/attendance"
	personRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/person"
	routeRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/route"
	"github.com/m04kA/SMC-BusSeating/internal/infra/storage/schema"
	"github.com/m04kA/SMC-BusSeating/internal/seed"
	attendanceService "github.com/m04kA/SMC-BusSeating/internal/service/attendance"
	identityService "github.com/m04kA/SMC-BusSeating/internal/service/identity"
	routesService "github.com/m04kA/SMC-BusSeating/internal/service/routes"
	getRouteDetailUC "github.com/m04kA/SMC-BusSeating/internal/usecase/get_route_detail"
	getSeatMapUC "github.com/m04kA/SMC-BusSeating/internal/usecase/get_seat_map"
	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
	"github.com/m04kA/SMC-BusSeating/pkg/logger"
	"github.com/m04kA/SMC-BusSeating/pkg/metrics"
	"github.com/m04kA/SMC-BusSeating/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BusSeating/pkg/txmanager"
)

// metricsObserver то, что сервисы пишут в метрики
type metricsObserver interface {
	ObserveLogin(outcome string)
	ObserveAttendance(routeNumber int)
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-BusSeating...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		observer         metricsObserver = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		observer = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if cfg.Database.Driver == psqlbuilder.DriverSQLite {
		// sqlite не любит параллельную запись
		db.SetMaxOpenConns(1)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	ctx := context.Background()
	if err := schema.Apply(ctx, db, cfg.Database.Driver); err != nil {
		log.Fatal("Failed to apply schema: %v", err)
	}

	if cfg.Metrics.Enabled {
		dbmetrics.CollectPoolStats(db, metricsCollector, dbmetrics.DefaultCollectInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	sb := psqlbuilder.For(cfg.Database.Driver)
	routeRepository := routeRepo.NewRepository(db, sb)
	personRepository := personRepo.NewRepository(db, sb)
	attendanceRepository := attendanceRepo.NewRepository(db, sb)
	txMgr := txmanager.NewTransactionManager(db)

	// Начальные данные
	if cfg.Database.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.Database.SeedFile)
		if err != nil {
			log.Fatal("Failed to load seed file: %v", err)
		}
		loader := seed.NewLoader(routeRepository, personRepository, txMgr, log)
		if err := loader.Apply(ctx, fixture); err != nil {
			log.Fatal("Failed to seed database: %v", err)
		}
	}

	// Брокер событий (если включен)
	var publisher attendanceService.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.Broker.Enabled {
		rmq, err := rabbitmq.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		defer rmq.Close()
		publisher = rmq
		log.Info("Attendance events will be published to exchange=%s", cfg.Broker.Exchange)
	}

	// Инициализируем сервисы
	identitySvc := identityService.NewService(personRepository, observer, log)
	attendanceSvc := attendanceService.NewService(attendanceRepository, routeRepository, publisher, observer, log)
	routesSvc := routesService.NewService(routeRepository, log)

	// Инициализируем use cases
	getRouteDetailUseCase := getRouteDetailUC.NewUseCase(routeRepository, attendanceSvc, log)
	getSeatMapUseCase := getSeatMapUC.NewUseCase(routeRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(identitySvc, log)
	listRoutes := listRoutesHandler.NewHandler(routesSvc, log)
	getOverview := getOverviewHandler.NewHandler(routesSvc, log)
	getRoute := getRouteHandler.NewHandler(getRouteDetailUseCase, cfg.Seating.RecentAttendance, log)
	getAttendance := getAttendanceHandler.NewHandler(attendanceSvc, cfg.Seating.RecentAttendance, log)
	submitAttendance := submitAttendanceHandler.NewHandler(attendanceSvc, log)
	getSeatMap := getSeatMapHandler.NewHandler(getSeatMapUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	routes := r.PathPrefix("/routes").Subrouter()
	routes.HandleFunc("", listRoutes.Handle).Methods(http.MethodGet)
	routes.HandleFunc("/admin/overview", getOverview.Handle).Methods(http.MethodGet)
	routes.HandleFunc("/{number:[0-9]+}", getRoute.Handle).Methods(http.MethodGet)
	routes.HandleFunc("/{number:[0-9]+}/attendance", getAttendance.Handle).Methods(http.MethodGet)
	routes.HandleFunc("/{number:[0-9]+}/attendance", submitAttendance.Handle).Methods(http.MethodPost)
	routes.HandleFunc("/{number:[0-9]+}/seats", getSeatMap.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
