package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	cancelTurnHandler "github.com/hospital/turns-service/internal/api/handlers/cancel_turn"
	closeSessionHandler "github.com/hospital/turns-service/internal/api/handlers/close_session"
	createTurnHandler "github.com/hospital/turns-service/internal/api/handlers/create_turn"
	deleteSlotConfigHandler "github.com/hospital/turns-service/internal/api/handlers/delete_slot_config"
	deleteTurnHandler "github.com/hospital/turns-service/internal/api/handlers/delete_turn"
	getAvailableSlotsHandler "github.com/hospital/turns-service/internal/api/handlers/get_available_slots"
	getSelectableDatesHandler "github.com/hospital/turns-service/internal/api/handlers/get_selectable_dates"
	getSlotConfigHandler "github.com/hospital/turns-service/internal/api/handlers/get_slot_config"
	getTurnHandler "github.com/hospital/turns-service/internal/api/handlers/get_turn"
	listSlotConfigsHandler "github.com/hospital/turns-service/internal/api/handlers/list_slot_configs"
	openSessionHandler "github.com/hospital/turns-service/internal/api/handlers/open_session"
	prepareRescheduleHandler "github.com/hospital/turns-service/internal/api/handlers/prepare_reschedule"
	rescheduleTurnHandler "github.com/hospital/turns-service/internal/api/handlers/reschedule_turn"
	transitionTurnStateHandler "github.com/hospital/turns-service/internal/api/handlers/transition_turn_state"
	updateSlotConfigHandler "github.com/hospital/turns-service/internal/api/handlers/update_slot_config"
	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/daynames"
	storeClient "github.com/hospital/turns-service/internal/integrations/appointmentstore"
	sessionsService "github.com/hospital/turns-service/internal/service/sessions"
	turnsService "github.com/hospital/turns-service/internal/service/turns"
	createTurnUC "github.com/hospital/turns-service/internal/usecase/create_turn"
	getAvailableSlotsUC "github.com/hospital/turns-service/internal/usecase/get_available_slots"
	rescheduleTurnUC "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, log := a.cfg, a.log
	log.Info("Starting turns-service...")

	db, err := a.openDB()
	if err != nil {
		return err
	}

	dayNames, err := daynames.New(cfg.Availability.Locale)
	if err != nil {
		return fmt.Errorf("failed to initialize day names: %w", err)
	}

	// Инициализируем интеграционных клиентов
	catalog := a.newCatalogClient()
	store := storeClient.NewClient(
		cfg.AppointmentStore.URL,
		cfg.AppointmentStore.APIKey,
		cfg.AppointmentStore.TimeoutDuration(),
		a.location,
		log,
	)
	log.Info("Integration clients initialized (ScheduleCatalog=%s timeout=%ds, AppointmentStore=%s timeout=%ds)",
		cfg.ScheduleCatalog.URL, cfg.ScheduleCatalog.Timeout, cfg.AppointmentStore.URL, cfg.AppointmentStore.Timeout)

	// Инициализируем сервисы
	slotConfigSvc := a.newSlotConfigService(db)
	sessionSvc := sessionsService.NewService(
		cfg.Sessions.Size,
		cfg.Sessions.TTLDuration(),
		a.resolverFactory(catalog, slotConfigSvc),
		a.metrics,
		log,
	)
	defer sessionSvc.Close()
	turnSvc := turnsService.NewService(store, a.metrics, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(dayNames, log)
	createTurnUseCase := createTurnUC.NewUseCase(store, a.metrics, log, cfg.Availability.AllowServiceBundling)
	rescheduleTurnUseCase := rescheduleTurnUC.NewUseCase(store, a.metrics, log)

	// Инициализируем handlers
	openSession := openSessionHandler.NewHandler(sessionSvc, log)
	closeSession := closeSessionHandler.NewHandler(sessionSvc, log)
	getSelectableDates := getSelectableDatesHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSlotConfig := getSlotConfigHandler.NewHandler(slotConfigSvc, log)
	updateSlotConfig := updateSlotConfigHandler.NewHandler(slotConfigSvc, log)
	deleteSlotConfig := deleteSlotConfigHandler.NewHandler(slotConfigSvc, log)
	listSlotConfigs := listSlotConfigsHandler.NewHandler(slotConfigSvc, log)
	createTurn := createTurnHandler.NewHandler(createTurnUseCase, log)
	getTurn := getTurnHandler.NewHandler(turnSvc, log)
	deleteTurn := deleteTurnHandler.NewHandler(turnSvc, log)
	transitionTurnState := transitionTurnStateHandler.NewHandler(turnSvc, log)
	cancelTurn := cancelTurnHandler.NewHandler(turnSvc, log)
	prepareReschedule := prepareRescheduleHandler.NewHandler(rescheduleTurnUseCase, log)
	rescheduleTurn := rescheduleTurnHandler.NewHandler(rescheduleTurnUseCase, log)

	// Резолвер сессии из X-Session-ID, без заголовка одноразовый
	withSession := middleware.Session(sessionSvc)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Сессии резолвера ---
	api.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.Handle("/specialties/{specialtyId}/selectable-dates",
		withSession(http.HandlerFunc(getSelectableDates.Handle))).Methods(http.MethodGet)
	api.Handle("/specialties/{specialtyId}/slots",
		withSession(http.HandlerFunc(getAvailableSlots.Handle))).Methods(http.MethodGet)

	// --- Настройки слотов ---
	api.HandleFunc("/specialties/{specialtyId}/slot-config", getSlotConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slot-configs", listSlotConfigs.Handle).Methods(http.MethodGet)

	// --- Талоны ---
	api.HandleFunc("/turns/{turnId}", getTurn.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.Handle("/turns", withSession(http.HandlerFunc(createTurn.Handle))).Methods(http.MethodPost)
	protected.HandleFunc("/turns/{turnId}", deleteTurn.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/turns/{turnId}/state", transitionTurnState.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/turns/{turnId}/cancel", cancelTurn.Handle).Methods(http.MethodPatch)

	// --- Настройки слотов (администрирование) ---
	protected.HandleFunc("/specialties/{specialtyId}/slot-config", updateSlotConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/specialties/{specialtyId}/slot-config", deleteSlotConfig.Handle).Methods(http.MethodDelete)

	// --- Перенос ---
	protected.Handle("/turns/{turnId}/reschedule/prepare",
		withSession(http.HandlerFunc(prepareReschedule.Handle))).Methods(http.MethodPost)
	protected.Handle("/turns/{turnId}/reschedule",
		withSession(http.HandlerFunc(rescheduleTurn.Handle))).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (open sessions: %d)", sessionSvc.Len())
	return nil
}
