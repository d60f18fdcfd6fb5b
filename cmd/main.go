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
	"github.com/robfig/cron/v3"

	cancelReservationHandler "github.com/salonmobile/booking-engine/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/salonmobile/booking-engine/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/salonmobile/booking-engine/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/salonmobile/booking-engine/internal/api/handlers/get_available_slots"
	getReservationsHandler "github.com/salonmobile/booking-engine/internal/api/handlers/get_reservations"
	"github.com/salonmobile/booking-engine/internal/api/middleware"
	"github.com/salonmobile/booking-engine/internal/config"
	"github.com/salonmobile/booking-engine/internal/dispatch"
	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/internal/infra/storage/localstore"
	reservationRepo "github.com/salonmobile/booking-engine/internal/infra/storage/reservation"
	"github.com/salonmobile/booking-engine/internal/integrations/geocoder"
	reservationsService "github.com/salonmobile/booking-engine/internal/service/reservations"
	createReservationUC "github.com/salonmobile/booking-engine/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/salonmobile/booking-engine/internal/usecase/get_available_slots"
	"github.com/salonmobile/booking-engine/pkg/logger"
	"github.com/salonmobile/booking-engine/pkg/metrics"
	"github.com/salonmobile/booking-engine/pkg/txmanager"
)

// reservationStore объединяет методы хранилища, которые нужны use cases
// и сервису. Его реализуют оба бэкенда: postgres репозиторий и локальное
// файловое хранилище.
type reservationStore interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByStatus(ctx context.Context, status domain.ReservationStatus) (int64, error)
}

// txManager интерфейс сериализуемой критической секции создания бронирования
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting booking-engine...")
	log.Info("Configuration loaded from config.toml")

	// Горизонт планирования: рабочие часы и каталог услуг
	hours, err := cfg.Business.Hours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}
	catalog, err := cfg.Business.Catalog()
	if err != nil {
		log.Fatal("Invalid service catalog: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища
	var (
		store reservationStore
		txMgr txManager
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = reservationRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case "local":
		localStore, err := localstore.Open(cfg.Storage.Path, log)
		if err != nil {
			log.Fatal("Failed to open local store at %s: %v", cfg.Storage.Path, err)
		}
		defer localStore.Close()
		log.Info("Local store opened at %s", cfg.Storage.Path)

		store = localStore
		txMgr = localStore
	}

	// Инициализируем клиента геокодирования
	var geocodeObs geocoder.Observer
	if metricsCollector != nil {
		geocodeObs = metricsCollector
	}
	geocoderClient := geocoder.NewClient(
		geocoder.Options{
			BaseURL:      cfg.Geocoder.BaseURL,
			Limit:        cfg.Geocoder.Limit,
			CountryCodes: cfg.Geocoder.CountryCodes,
			Language:     cfg.Geocoder.Language,
			UserAgent:    cfg.Geocoder.UserAgent,
		},
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		geocodeObs,
		log,
	)
	log.Info("Geocoder client initialized (url=%s, timeout=%ds)", cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout)

	// Инициализируем диспетчеризацию выездов
	dispatcher := dispatch.New(dispatch.Config{
		ZoneCenter:  cfg.Business.ZoneCenter(),
		MaxRadiusKm: cfg.Business.Zone.RadiusKm,
		Base:        cfg.Business.BaseLocation(),
	}, log)
	log.Info("Dispatcher initialized (zone center=%.4f,%.4f radius=%.1fkm)",
		cfg.Business.Zone.Lat, cfg.Business.Zone.Lng, cfg.Business.Zone.RadiusKm)

	// Инициализируем сервис жизненного цикла бронирований
	var sweepCounter reservationsService.SweepCounter
	if metricsCollector != nil {
		sweepCounter = metricsCollector.SweepDeletedTotal
	}
	reservationSvc := reservationsService.NewService(store, sweepCounter, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		store,
		geocoderClient,
		dispatcher,
		txMgr,
		hours,
		catalog,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store,
		hours,
		catalog,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская часть сайта)
	// ============================================================

	// Свободные слоты на день
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Список бронирований с фильтрацией
	admin.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования
	admin.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	admin.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Фоновая очистка: прошедшие подтверждённые и отменённые записи
	sweeper := cron.New()
	_, err = sweeper.AddFunc(fmt.Sprintf("@every %ds", cfg.Sweep.IntervalSeconds), func() {
		if _, err := reservationSvc.Sweep(context.Background(), time.Now()); err != nil {
			log.Error("Sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule sweep: %v", err)
	}
	sweeper.Start()
	log.Info("Sweep scheduled every %ds", cfg.Sweep.IntervalSeconds)

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

	// Останавливаем фоновую очистку и дожидаемся активного запуска
	<-sweeper.Stop().Done()

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
