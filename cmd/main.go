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

	activateSubscriptionHandler "github.com/barbearia/barbershop-service/internal/api/handlers/activate_subscription"
	cancelSubscriptionHandler "github.com/barbearia/barbershop-service/internal/api/handlers/cancel_subscription"
	createAppointmentHandler "github.com/barbearia/barbershop-service/internal/api/handlers/create_appointment"
	createClientHandler "github.com/barbearia/barbershop-service/internal/api/handlers/create_client"
	createPlanHandler "github.com/barbearia/barbershop-service/internal/api/handlers/create_plan"
	deleteAppointmentHandler "github.com/barbearia/barbershop-service/internal/api/handlers/delete_appointment"
	deleteClientHandler "github.com/barbearia/barbershop-service/internal/api/handlers/delete_client"
	deletePlanHandler "github.com/barbearia/barbershop-service/internal/api/handlers/delete_plan"
	getClientHandler "github.com/barbearia/barbershop-service/internal/api/handlers/get_client"
	getDashboardHandler "github.com/barbearia/barbershop-service/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/barbearia/barbershop-service/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/barbearia/barbershop-service/internal/api/handlers/list_appointments"
	listClientsHandler "github.com/barbearia/barbershop-service/internal/api/handlers/list_clients"
	listPlansHandler "github.com/barbearia/barbershop-service/internal/api/handlers/list_plans"
	updateAppointmentHandler "github.com/barbearia/barbershop-service/internal/api/handlers/update_appointment"
	updateClientHandler "github.com/barbearia/barbershop-service/internal/api/handlers/update_client"
	updatePlanHandler "github.com/barbearia/barbershop-service/internal/api/handlers/update_plan"
	updateSettingsHandler "github.com/barbearia/barbershop-service/internal/api/handlers/update_settings"
	"github.com/barbearia/barbershop-service/internal/api/middleware"
	"github.com/barbearia/barbershop-service/internal/config"
	"github.com/barbearia/barbershop-service/internal/domain"
	appointmentRepo "github.com/barbearia/barbershop-service/internal/infra/storage/appointment"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	"github.com/barbearia/barbershop-service/internal/infra/storage/jsonfile"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
	settingsRepo "github.com/barbearia/barbershop-service/internal/infra/storage/settings"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
	"github.com/barbearia/barbershop-service/internal/integrations/mailtransport"
	appointmentsService "github.com/barbearia/barbershop-service/internal/service/appointments"
	clientsService "github.com/barbearia/barbershop-service/internal/service/clients"
	dashboardService "github.com/barbearia/barbershop-service/internal/service/dashboard"
	notificationService "github.com/barbearia/barbershop-service/internal/service/notification"
	plansService "github.com/barbearia/barbershop-service/internal/service/plans"
	seedService "github.com/barbearia/barbershop-service/internal/service/seed"
	settingsService "github.com/barbearia/barbershop-service/internal/service/settings"
	subscriptionsService "github.com/barbearia/barbershop-service/internal/service/subscriptions"
	createAppointmentUC "github.com/barbearia/barbershop-service/internal/usecase/create_appointment"
	estimateReturnUC "github.com/barbearia/barbershop-service/internal/usecase/estimate_return"
	"github.com/barbearia/barbershop-service/pkg/dbmetrics"
	"github.com/barbearia/barbershop-service/pkg/logger"
	"github.com/barbearia/barbershop-service/pkg/metrics"
	"github.com/barbearia/barbershop-service/pkg/simpletxmanager"
	"github.com/barbearia/barbershop-service/pkg/txmanager"
)

// Storage surfaces the wiring needs from either backend.
type clientStorage interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, q string) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type planStorage interface {
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id int64) error
	CountInactive(ctx context.Context) (int64, error)
}

type subscriptionStorage interface {
	Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
	Deactivate(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

type appointmentStorage interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
	CountByPeriod(ctx context.Context, start, end time.Time) (int64, error)
}

type settingStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*domain.Setting, error)
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting barbershop-service...")
	log.Info("Configuration loaded from config.toml")

	// Domain counters are recorded unconditionally; cfg.Metrics.Enabled only
	// gates the HTTP exposition endpoint and the DB instrumentation.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	var (
		clients       clientStorage
		plans         planStorage
		subscriptions subscriptionStorage
		appointments  appointmentStorage
		settingsStore settingStorage
		txMgr         txManager
	)

	switch cfg.Storage.Backend {
	case config.BackendJSONFile:
		store, err := jsonfile.Open(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("Failed to open JSON store at %s: %v", cfg.Storage.FilePath, err)
		}
		clients = store.Clients()
		plans = store.Plans()
		subscriptions = store.Subscriptions()
		appointments = store.Appointments()
		settingsStore = store.Settings()
		txMgr = store
		log.Info("Using JSON file storage at %s", cfg.Storage.FilePath)

	default: // postgres
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			clients = clientRepo.NewRepository(wrappedDB)
			plans = planRepo.NewRepository(wrappedDB)
			subscriptions = subscriptionRepo.NewRepository(wrappedDB)
			appointments = appointmentRepo.NewRepository(wrappedDB)
			settingsStore = settingsRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			clients = clientRepo.NewRepository(db)
			plans = planRepo.NewRepository(db)
			subscriptions = subscriptionRepo.NewRepository(db)
			appointments = appointmentRepo.NewRepository(db)
			settingsStore = settingsRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	mailClient := mailtransport.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		time.Duration(cfg.SMTP.Timeout)*time.Second,
		log,
	)
	log.Info("Mail transport initialized (host=%s, port=%d, timeout=%ds)",
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Timeout)

	// Services and use cases
	settingsSvc := settingsService.NewService(settingsStore, log)
	notificationSvc := notificationService.NewService(settingsSvc, mailClient, metricsCollector, log)
	estimateReturnUseCase := estimateReturnUC.NewUseCase(clients, appointments, settingsSvc, metricsCollector, log)
	clientsSvc := clientsService.NewService(
		clients,
		appointments,
		subscriptions,
		plans,
		estimateReturnUseCase,
		notificationSvc,
		log,
	)
	plansSvc := plansService.NewService(plans, log)
	subscriptionsSvc := subscriptionsService.NewService(subscriptions, clients, plans, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(appointments, log)
	dashboardSvc := dashboardService.NewService(clients, appointments, subscriptions, plans, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		clients,
		subscriptions,
		plans,
		appointments,
		txMgr,
		metricsCollector,
		log,
	)

	// Starter data
	seeder := seedService.NewService(plans, settingsSvc, log)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal("Seeding failed: %v", err)
	}

	// Handlers
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	listPlans := listPlansHandler.NewHandler(plansSvc, log)
	createPlan := createPlanHandler.NewHandler(plansSvc, log)
	updatePlan := updatePlanHandler.NewHandler(plansSvc, log)
	deletePlan := deletePlanHandler.NewHandler(plansSvc, log)
	activateSubscription := activateSubscriptionHandler.NewHandler(subscriptionsSvc, log)
	cancelSubscription := cancelSubscriptionHandler.NewHandler(subscriptionsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Clients
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// Subscriptions
	api.HandleFunc("/clients/{clientId}/subscription", activateSubscription.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/subscription/cancel", cancelSubscription.Handle).Methods(http.MethodPost)

	// Appointments
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Plans
	api.HandleFunc("/plans", listPlans.Handle).Methods(http.MethodGet)
	api.HandleFunc("/plans", createPlan.Handle).Methods(http.MethodPost)
	api.HandleFunc("/plans/{planId}", updatePlan.Handle).Methods(http.MethodPut)
	api.HandleFunc("/plans/{planId}", deletePlan.Handle).Methods(http.MethodDelete)

	// Settings and dashboard
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

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
