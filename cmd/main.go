package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/get_calendar"
	getDashboardHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/get_dashboard"
	getQuoteHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/list_rooms"
	updateReservationHandler "github.com/m04kA/NC-GuesthouseService/internal/api/handlers/update_reservation"
	"github.com/m04kA/NC-GuesthouseService/internal/api/middleware"
	"github.com/m04kA/NC-GuesthouseService/internal/config"
	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	reservationRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	availabilityService "github.com/m04kA/NC-GuesthouseService/internal/service/availability"
	reservationsService "github.com/m04kA/NC-GuesthouseService/internal/service/reservations"
	createReservationUC "github.com/m04kA/NC-GuesthouseService/internal/usecase/create_reservation"
	getCalendarUC "github.com/m04kA/NC-GuesthouseService/internal/usecase/get_calendar"
	getDashboardUC "github.com/m04kA/NC-GuesthouseService/internal/usecase/get_dashboard"
	updateReservationUC "github.com/m04kA/NC-GuesthouseService/internal/usecase/update_reservation"
	"github.com/m04kA/NC-GuesthouseService/pkg/logger"
	"github.com/m04kA/NC-GuesthouseService/pkg/metrics"
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

	log.Info("Starting NC-GuesthouseService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог комнат из конфигурации
	rooms := make([]*domain.Room, 0, len(cfg.Guesthouse.Rooms))
	for _, rc := range cfg.Guesthouse.Rooms {
		rooms = append(rooms, &domain.Room{
			ID:       rc.ID,
			Name:     rc.Name,
			Capacity: rc.Capacity,
		})
	}
	log.Info("Room catalog loaded: %d rooms", len(rooms))

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(rooms)
	reservationRepository := reservationRepo.NewRepository()

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, roomRepository, log)
	availabilitySvc := availabilityService.NewService(reservationRepository, roomRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationRepository, roomRepository, log)
	updateReservationUseCase := updateReservationUC.NewUseCase(reservationRepository, roomRepository, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(reservationRepository, roomRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationRepository, roomRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listRooms := listRoomsHandler.NewHandler(reservationSvc, log)
	getQuote := getQuoteHandler.NewHandler(log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Комнаты и доступность ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Расчет стоимости ---
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Обзорные представления ---
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

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
