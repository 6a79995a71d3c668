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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	appointmentsHandler "github.com/geekpf/agenda2/internal/api/handlers/appointments"
	availabilityHandler "github.com/geekpf/agenda2/internal/api/handlers/availability"
	bookingSessionHandler "github.com/geekpf/agenda2/internal/api/handlers/booking_session"
	getAvailableDatesHandler "github.com/geekpf/agenda2/internal/api/handlers/get_available_dates"
	getFreeSlotsHandler "github.com/geekpf/agenda2/internal/api/handlers/get_free_slots"
	professionalsHandler "github.com/geekpf/agenda2/internal/api/handlers/professionals"
	servicesHandler "github.com/geekpf/agenda2/internal/api/handlers/services"
	"github.com/geekpf/agenda2/internal/api/middleware"
	"github.com/geekpf/agenda2/internal/config"
	"github.com/geekpf/agenda2/internal/infra/session"
	appointmentRepo "github.com/geekpf/agenda2/internal/infra/storage/appointment"
	availabilityRepo "github.com/geekpf/agenda2/internal/infra/storage/availability"
	professionalRepo "github.com/geekpf/agenda2/internal/infra/storage/professional"
	serviceRepo "github.com/geekpf/agenda2/internal/infra/storage/service"
	appointmentsService "github.com/geekpf/agenda2/internal/service/appointments"
	catalogService "github.com/geekpf/agenda2/internal/service/catalog"
	scheduleService "github.com/geekpf/agenda2/internal/service/schedule"
	bookingFlowUC "github.com/geekpf/agenda2/internal/usecase/booking_flow"
	getAvailableDatesUC "github.com/geekpf/agenda2/internal/usecase/get_available_dates"
	getFreeSlotsUC "github.com/geekpf/agenda2/internal/usecase/get_free_slots"
	"github.com/geekpf/agenda2/pkg/logger"
	"github.com/geekpf/agenda2/pkg/metrics"
	"github.com/geekpf/agenda2/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting agenda2...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone offset: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		metricsCollector.StartDBStatsCollector(db, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Хранилище сессий бронирования: Redis в production, in-memory для разработки
	var sessionStore bookingFlowUC.SessionStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient, cfg.Redis.SessionTTL())
		log.Info("Booking sessions stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.SessionTTL())
	} else {
		sessionStore = session.NewMemoryStore(cfg.Redis.SessionTTL())
		log.Info("Booking sessions stored in memory (ttl=%s)", cfg.Redis.SessionTTL())
	}

	// Инициализируем репозитории
	serviceRepository := serviceRepo.NewRepository(db)
	professionalRepository := professionalRepo.NewRepository(db)
	availabilityRepository := availabilityRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		serviceRepository,
		professionalRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(availabilityRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		serviceRepository,
		professionalRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		availabilityRepository,
		professionalRepository,
		cfg.Booking.HorizonDays,
		location,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		professionalRepository,
		log,
	)
	bookingFlowUseCase := bookingFlowUC.New(
		sessionStore,
		serviceRepository,
		professionalRepository,
		availabilityRepository,
		appointmentRepository,
		txMgr,
		cfg.Booking.HorizonDays,
		location,
		nil,
		log,
	)

	// Инициализируем handlers
	services := servicesHandler.NewHandler(catalogSvc, log)
	professionals := professionalsHandler.NewHandler(catalogSvc, log)
	availability := availabilityHandler.NewHandler(scheduleSvc, log)
	appointments := appointmentsHandler.NewHandler(appointmentsSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(bookingFlowUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский процесс бронирования)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(rl.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Каталог для клиентов
	public.HandleFunc("/services", services.List).Methods(http.MethodGet)
	public.HandleFunc("/services/{serviceId}/pix-qr", services.PixQR).Methods(http.MethodGet)
	public.HandleFunc("/professionals", professionals.List).Methods(http.MethodGet)

	// Доступность
	public.HandleFunc("/professionals/{professionalId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)
	public.HandleFunc("/professionals/{professionalId}/free-slots",
		getFreeSlots.Handle).Methods(http.MethodGet)

	// Сессия бронирования
	public.HandleFunc("/booking-sessions", bookingSession.Start).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Get).Methods(http.MethodGet)
	public.HandleFunc("/booking-sessions/{sessionId}/service", bookingSession.SelectService).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}/professional", bookingSession.SelectProfessional).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}/datetime", bookingSession.SelectDateTime).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}/confirm", bookingSession.Confirm).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}/back", bookingSession.Back).Methods(http.MethodPost)
	public.HandleFunc("/booking-sessions/{sessionId}/restart", bookingSession.Restart).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	admin.HandleFunc("/appointments", appointments.List).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", appointments.UpdateStatus).Methods(http.MethodPatch)

	// --- Услуги ---
	admin.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", services.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", services.Delete).Methods(http.MethodDelete)

	// --- Мастера ---
	admin.HandleFunc("/professionals", professionals.Create).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{professionalId}", professionals.Update).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{professionalId}", professionals.Delete).Methods(http.MethodDelete)

	// --- Недельное расписание ---
	admin.HandleFunc("/availability", availability.GetWeek).Methods(http.MethodGet)
	admin.HandleFunc("/availability/{dayOfWeek}", availability.UpdateDay).Methods(http.MethodPut)

	// CORS для браузерного клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
