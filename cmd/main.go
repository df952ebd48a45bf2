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

	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/get_available_slots"
	getSessionHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/get_session"
	listAppointmentsHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/list_appointments"
	listDoctorsHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/list_doctors"
	loginHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/logout"
	selectSlotsHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/select_slots"
	updateAppointmentStatusHandler "github.com/m04kA/MediCare-Gateway/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/MediCare-Gateway/internal/api/middleware"
	"github.com/m04kA/MediCare-Gateway/internal/config"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/infra/session"
	"github.com/m04kA/MediCare-Gateway/internal/infra/storage/bookedslots"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
	appointmentsService "github.com/m04kA/MediCare-Gateway/internal/service/appointments"
	authService "github.com/m04kA/MediCare-Gateway/internal/service/auth"
	doctorsService "github.com/m04kA/MediCare-Gateway/internal/service/doctors"
	"github.com/m04kA/MediCare-Gateway/internal/slots"
	createBookingUC "github.com/m04kA/MediCare-Gateway/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
	listDoctorsUC "github.com/m04kA/MediCare-Gateway/internal/usecase/list_doctors"
	selectSlotsUC "github.com/m04kA/MediCare-Gateway/internal/usecase/select_slots"
	"github.com/m04kA/MediCare-Gateway/pkg/logger"
	"github.com/m04kA/MediCare-Gateway/pkg/metrics"
	"github.com/m04kA/MediCare-Gateway/pkg/txmanager"
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

	log.Info("Starting MediCare-Gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil *Metrics ничего не пишет
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент MediCare REST API
	medicareClient := medicareapi.NewClient(
		cfg.MedicareAPI.URL,
		time.Duration(cfg.MedicareAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("MediCare API client initialized (url=%s timeout=%ds)", cfg.MedicareAPI.URL, cfg.MedicareAPI.Timeout)

	// Хранилище сессий
	var sessionStore authService.SessionStore
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		sessionStore = session.NewRedisStore(redisClient)
		log.Info("Session store: redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	default:
		sessionStore = session.NewMemoryStore(cfg.Session.MemorySize, cfg.SessionTTL())
		log.Info("Session store: memory (size=%d)", cfg.Session.MemorySize)
	}

	// Хранилище броней слотов (опционально); интерфейсы остаются nil, если выключено
	var (
		bookedSlotsReader  getAvailableSlotsUC.BookedSlotsRepository
		bookedSlotsWriter  createBookingUC.BookedSlotsRepository
		reservationRelease appointmentsService.ReservationReleaser
		txMgr              createBookingUC.TransactionManager
	)

	if cfg.Availability.ExcludeBooked {
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

		repo := bookedslots.NewRepository(db)
		bookedSlotsReader = repo
		bookedSlotsWriter = repo
		reservationRelease = repo
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Источник случайности для генератора слотов
	seed := cfg.Availability.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := slots.NewLockedSource(seed)

	// Инициализируем сервисы
	doctorsSvc := doctorsService.NewService(
		medicareClient,
		cfg.Doctors.CacheSize,
		cfg.DoctorsCacheTTL(),
		cfg.Doctors.DemoFallback,
		log,
	)
	authSvc := authService.NewService(
		medicareClient,
		sessionStore,
		cfg.SessionTTL(),
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		medicareClient,
		reservationRelease,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		doctorsSvc,
		bookedSlotsReader,
		rnd,
		&getAvailableSlotsUC.RealTimeProvider{Location: cfg.Location()},
		metricsCollector,
		log,
	)
	listDoctorsUseCase := listDoctorsUC.NewUseCase(
		doctorsSvc,
		getAvailableSlotsUseCase,
		log,
	)
	selectSlotsUseCase := selectSlotsUC.NewUseCase(log)
	createBookingUseCase := createBookingUC.NewUseCase(
		doctorsSvc,
		medicareClient,
		bookedSlotsWriter,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler()
	listDoctors := listDoctorsHandler.NewHandler(listDoctorsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	selectSlots := selectSlotsHandler.NewHandler(selectSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// Карточки врачей со слотами первой доступной даты
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)

	// Слоты врача на выбранную дату
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Переключение даты по уже полученному набору слотов
	api.HandleFunc("/slots/select", selectSlots.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <sessionId>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)

	// --- Запись на приём (только пациенты) ---
	protected.Handle("/bookings",
		middleware.RequireRole(domain.RolePatient)(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// CORS оборачивает весь роутер, чтобы preflight не упирался в Methods()
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(r),
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
