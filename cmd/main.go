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

	blockDatesHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/block_dates"
	createBookingHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/create_booking"
	createChannelHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/create_channel"
	deleteBookingHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/delete_booking"
	deleteChannelHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/delete_channel"
	getAvailabilityHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/get_calendar"
	getChannelHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/get_channel"
	listBookingsHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/list_bookings"
	listChannelsHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/list_channels"
	updateBookingHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/update_booking"
	updateChannelHandler "github.com/premiermedia/AdBookingService/internal/api/handlers/update_channel"
	"github.com/premiermedia/AdBookingService/internal/api/middleware"
	"github.com/premiermedia/AdBookingService/internal/cache"
	"github.com/premiermedia/AdBookingService/internal/config"
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/internal/infra/storage"
	bookingRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/booking"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/internal/notify"
	"github.com/premiermedia/AdBookingService/internal/service/bookingrules"
	bookingsService "github.com/premiermedia/AdBookingService/internal/service/bookings"
	inventoryService "github.com/premiermedia/AdBookingService/internal/service/inventory"
	blockDatesUC "github.com/premiermedia/AdBookingService/internal/usecase/block_dates"
	checkAvailabilityUC "github.com/premiermedia/AdBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/premiermedia/AdBookingService/internal/usecase/create_booking"
	monthlyCalendarUC "github.com/premiermedia/AdBookingService/internal/usecase/monthly_calendar"
	updateBookingUC "github.com/premiermedia/AdBookingService/internal/usecase/update_booking"
	"github.com/premiermedia/AdBookingService/pkg/dbmetrics"
	"github.com/premiermedia/AdBookingService/pkg/logger"
	"github.com/premiermedia/AdBookingService/pkg/metrics"
	"github.com/premiermedia/AdBookingService/pkg/simpletxmanager"
	"github.com/premiermedia/AdBookingService/pkg/txmanager"
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

	log.Info("Starting AdBookingService...")

	// Применяем миграции схемы
	if cfg.Migrations.Auto {
		if err := storage.Migrate(cfg.Database.MigrateDSN()); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кеш календарей
	type calendarCache interface {
		GetCalendar(ctx context.Context, key string) (domain.MonthlyCalendar, bool)
		SetCalendar(ctx context.Context, key string, calendar domain.MonthlyCalendar)
		InvalidateCalendars(ctx context.Context)
	}
	var calCache calendarCache

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

		calCache = cache.NewRedisCalendarCache(
			redisClient,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		log.Info("Calendar cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		calCache = cache.NewNoopCalendarCache()
		log.Info("Calendar cache disabled")
	}

	// Уведомления о подтвержденных бронированиях
	type bookingNotifier interface {
		BookingConfirmed(b *domain.Booking)
	}
	var notifier bookingNotifier

	if cfg.AMQP.Enabled {
		publisher, err := notify.NewAMQPPublisher(cfg.AMQP.URL)
		if err != nil {
			log.Fatal("Failed to connect to AMQP broker: %v", err)
		}
		defer publisher.Close()

		dispatcher := notify.NewDispatcher(publisher, log)
		defer dispatcher.Wait()
		notifier = dispatcher
		log.Info("Booking notifications enabled (queue=%s)", notify.QueueBookingConfirmed)
	} else {
		notifier = notify.NewNoopNotifier()
		log.Info("Booking notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		channelRepository *channelRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		channelRepository = channelRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		channelRepository = channelRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	var bookingCounter createBookingUC.BookingCounter
	if cfg.Metrics.Enabled {
		bookingCounter = metricsCollector
	} else {
		bookingCounter = noopBookingCounter{}
	}

	// Инициализируем сервисы
	rulesService := bookingrules.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, calCache, log)
	inventorySvc := inventoryService.NewService(channelRepository, bookingRepository, calCache, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(channelRepository, bookingRepository, log)
	monthlyCalendarUseCase := monthlyCalendarUC.NewUseCase(channelRepository, bookingRepository, calCache, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, rulesService, txMgr, notifier, calCache, bookingCounter, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository, rulesService, txMgr, notifier, calCache, log)
	blockDatesUseCase := blockDatesUC.NewUseCase(bookingRepository, calCache, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(monthlyCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	blockDates := blockDatesHandler.NewHandler(blockDatesUseCase, log)
	listChannels := listChannelsHandler.NewHandler(inventorySvc, log)
	getChannel := getChannelHandler.NewHandler(inventorySvc, log)
	createChannel := createChannelHandler.NewHandler(inventorySvc, log)
	updateChannel := updateChannelHandler.NewHandler(inventorySvc, log)
	deleteChannel := deleteChannelHandler.NewHandler(inventorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (чтение без аутентификации)
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)

	api.HandleFunc("/channels", listChannels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/channels/{id}", getChannel.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Инвентарь ---
	protected.HandleFunc("/channels", createChannel.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/channels/{id}", updateChannel.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/channels/{id}", deleteChannel.Handle).Methods(http.MethodDelete)

	// --- Административные блокировки ---
	protected.HandleFunc("/admin/blocks", blockDates.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

// noopBookingCounter заглушка счетчика бронирований при выключенных метриках
type noopBookingCounter struct{}

func (noopBookingCounter) BookingCreated(string) {}
