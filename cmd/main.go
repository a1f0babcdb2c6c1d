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

	cancelBookingHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/check_availability"
	createBookingHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/get_availability"
	getBookingHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/get_booking"
	getCharterBookingsHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/get_charter_bookings"
	getUserBookingsHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/get_user_bookings"
	updateAvailabilityHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers/update_booking_status"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/middleware"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/config"
	availabilityRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	availabilityService "github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability"
	bookingsService "github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings"
	bookTripUC "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/book_trip"
	cancelBookingUC "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/cancel_booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/dbmetrics"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/logger"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/metrics"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/simpletxmanager"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CharteredCatch booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Booking lifecycle events are best-effort: the service runs fine
	// with the stream disabled.
	var publisher interface {
		Publish(routingKey string, payload any) error
	}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}

	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, publisher, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)

	bookTripUseCase := bookTripUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		publisher,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		publisher,
		log,
	)

	createBooking := createBookingHandler.NewHandler(bookTripUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCharterBookings := getCharterBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: anonymous visitors browse a charter's calendar
	// before signing in to book.
	api.HandleFunc("/charters/{charterId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/charters/{charterId}/availability/check",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header set by the
	// marketplace gateway.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/charters/{charterId}/bookings", getCharterBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/charters/{charterId}/availability",
		updateAvailability.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
