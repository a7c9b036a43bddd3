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

	cancelAppointmentHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_client_appointments"
	getProfessionalHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_professional"
	getServiceHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_service"
	getProfessionalAppointmentsHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_professional_appointments"
	getServicesHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/get_services"
	rescheduleAppointmentHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/update_appointment_status"
	updateWorkingHoursHandler "github.com/anvlasova/Salon-SchedulingService/internal/api/handlers/update_working_hours"
	"github.com/anvlasova/Salon-SchedulingService/internal/api/middleware"
	"github.com/anvlasova/Salon-SchedulingService/internal/config"
	appointmentRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/appointment"
	clientRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/client"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	serviceRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/service"
	appointmentsService "github.com/anvlasova/Salon-SchedulingService/internal/service/appointments"
	catalogService "github.com/anvlasova/Salon-SchedulingService/internal/service/catalog"
	professionalsService "github.com/anvlasova/Salon-SchedulingService/internal/service/professionals"
	createAppointmentUC "github.com/anvlasova/Salon-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/anvlasova/Salon-SchedulingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/anvlasova/Salon-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/anvlasova/Salon-SchedulingService/pkg/dbmetrics"
	"github.com/anvlasova/Salon-SchedulingService/pkg/logger"
	"github.com/anvlasova/Salon-SchedulingService/pkg/metrics"
	"github.com/anvlasova/Salon-SchedulingService/pkg/simpletxmanager"
	"github.com/anvlasova/Salon-SchedulingService/pkg/txmanager"
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

	log.Info("Starting Salon-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		professionalRepository *professionalRepo.Repository
		serviceRepository      *serviceRepo.Repository
		clientRepository       *clientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		professionalRepository,
		log,
	)
	professionalSvc := professionalsService.NewService(professionalRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		clientRepository,
		txMgr,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		clientRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(professionalSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(professionalSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для записи
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Профиль мастера
	api.HandleFunc("/professionals/{professionalId}",
		getProfessional.Handle).Methods(http.MethodGet)

	// Каталог активных услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Карточка услуги
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи на другое время
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи (только мастер)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	// Расписание мастера
	protected.HandleFunc("/professionals/{professionalId}/appointments", getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// Обновление графика работы
	protected.HandleFunc("/professionals/{professionalId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

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
