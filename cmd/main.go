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

	bookRoomHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/book_room"
	cancelBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_booking"
	createContractHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_contract"
	createRoomHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_room"
	endContractHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/end_contract"
	exportRoomsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/export_rooms"
	extendContractHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/extend_contract"
	getDismissalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_dismissal"
	getRoomHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_room"
	listBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_bookings"
	listNotificationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_notifications"
	listRoomsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_rooms"
	markNotificationSentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/mark_notification_sent"
	printContractHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/print_contract"
	sendRemindersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/send_reminders"
	setDismissalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_dismissal"
	updateRoomHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
	preferencesService "github.com/m04kA/SMC-RentalService/internal/service/preferences"
	reportsService "github.com/m04kA/SMC-RentalService/internal/service/reports"
	roomsService "github.com/m04kA/SMC-RentalService/internal/service/rooms"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	bookRoomUC "github.com/m04kA/SMC-RentalService/internal/usecase/book_room"
	cancelBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_booking"
	createContractUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_contract"
	createRoomUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_room"
	endContractUC "github.com/m04kA/SMC-RentalService/internal/usecase/end_contract"
	extendContractUC "github.com/m04kA/SMC-RentalService/internal/usecase/extend_contract"
	sendRemindersUC "github.com/m04kA/SMC-RentalService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-RentalService/pkg/clock"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("RENTAL_CONFIG"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики. nil *metrics.Metrics безопасен для всех наблюдателей
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	timeProvider, err := clock.NewFromName(cfg.Contracts.Location)
	if err != nil {
		log.Fatal("Failed to load time zone %q: %v", cfg.Contracts.Location, err)
	}
	log.Info("Contract dates are computed in %s, extension policy=%s",
		cfg.Contracts.Location, cfg.Contracts.ExtensionPolicy)

	// Репозитории и менеджер транзакций
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Необязательные интеграции. Выключенная интеграция передается как nil интерфейс
	var kvStore preferencesService.KVStore
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Redis.DialTimeout)*time.Second)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		kvStore = cache.NewRedisStore(redisClient, cfg.Metrics.ServiceName+":")
		log.Info("Redis preferences store enabled (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	var reminderSender sendRemindersUC.ReminderSender
	if cfg.Notifier.Enabled {
		reminderSender = notifier.NewClient(
			cfg.Notifier.URL,
			cfg.Notifier.Token,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			cfg.Notifier.RetryCount,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds, workers=%d)",
			cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Notifier.Workers)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(
		roomRepository,
		bookingRepository,
		txMgr,
		timeProvider,
		metricsCollector,
		roomsService.PrintSettings{
			Landlord: models.LandlordInfo{
				FullName: cfg.Landlord.FullName,
				Phone:    cfg.Landlord.Phone,
				IDCard:   cfg.Landlord.IDCard,
				Address:  cfg.Landlord.Address,
				Bank:     cfg.Landlord.Bank,
			},
			PaymentDay: cfg.Contracts.PaymentDay,
		},
		log,
	)
	preferencesSvc := preferencesService.NewService(
		kvStore,
		time.Duration(cfg.Redis.DismissTTL)*time.Second,
		timeProvider,
		log,
	)
	reportSvc := reportsService.NewService(roomRepository, timeProvider, log)

	// Инициализируем use cases
	policy := cfg.Contracts.Policy()

	createRoomUseCase := createRoomUC.NewUseCase(roomRepository, metricsCollector, log)
	bookRoomUseCase := bookRoomUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	createContractUseCase := createContractUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		timeProvider,
		policy,
		metricsCollector,
		log,
	)
	extendContractUseCase := extendContractUC.NewUseCase(roomRepository, txMgr, policy, metricsCollector, log)
	endContractUseCase := endContractUC.NewUseCase(roomRepository, txMgr, metricsCollector, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		roomRepository,
		reminderSender,
		timeProvider,
		cfg.Notifier.Workers,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(createRoomUseCase, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	exportRooms := exportRoomsHandler.NewHandler(reportSvc, log)

	bookRoom := bookRoomHandler.NewHandler(bookRoomUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(roomSvc, log)

	createContract := createContractHandler.NewHandler(createContractUseCase, log)
	extendContract := extendContractHandler.NewHandler(extendContractUseCase, log)
	endContract := endContractHandler.NewHandler(endContractUseCase, log)
	printContract := printContractHandler.NewHandler(roomSvc, log)

	listNotifications := listNotificationsHandler.NewHandler(roomSvc, log)
	markNotificationSent := markNotificationSentHandler.NewHandler(roomSvc, log)
	sendReminders := sendRemindersHandler.NewHandler(sendRemindersUseCase, log)

	getDismissal := getDismissalHandler.NewHandler(preferencesSvc, log)
	setDismissal := setDismissalHandler.NewHandler(preferencesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	// export регистрируется до /rooms/{roomId}
	api.HandleFunc("/rooms/export", exportRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", updateRoom.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/rooms/{roomId:[0-9]+}/booking", bookRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/booking/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/bookings", listBookings.Handle).Methods(http.MethodGet)

	// --- Договоры ---
	api.HandleFunc("/rooms/{roomId:[0-9]+}/contract", createContract.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/contract/extend", extendContract.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/contract/end", endContract.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/contract/print", printContract.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	api.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/reminders", sendReminders.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/notification/sent", markNotificationSent.Handle).Methods(http.MethodPatch)

	// --- Настройки интерфейса (требуют X-User-ID header) ---
	protected := api.PathPrefix("/preferences").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/dismissals/{key}", getDismissal.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dismissals/{key}", setDismissal.Handle).Methods(http.MethodPut)

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
