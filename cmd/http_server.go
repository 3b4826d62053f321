package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/announcement"
	announcementpg "github.com/frahmantamala/homecare-staffing/internal/announcement/postgres"
	"github.com/frahmantamala/homecare-staffing/internal/application"
	applicationpg "github.com/frahmantamala/homecare-staffing/internal/application/postgres"
	"github.com/frahmantamala/homecare-staffing/internal/auth"
	authpg "github.com/frahmantamala/homecare-staffing/internal/auth/postgres"
	compliancepg "github.com/frahmantamala/homecare-staffing/internal/compliance/postgres"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
	employeepg "github.com/frahmantamala/homecare-staffing/internal/employee/postgres"
	"github.com/frahmantamala/homecare-staffing/internal/intake"
	intakepg "github.com/frahmantamala/homecare-staffing/internal/intake/postgres"
	"github.com/frahmantamala/homecare-staffing/internal/notification"
	"github.com/frahmantamala/homecare-staffing/internal/transport"
	"github.com/frahmantamala/homecare-staffing/internal/transport/rest"
	"github.com/frahmantamala/homecare-staffing/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server for the staffing back office API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm shares the sqlx pool rather than opening a second one
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(appLogger)
	base := transport.NewBaseHandler(appLogger)

	// account lifecycle hooks run inside the employee repository's
	// transactions; explicit wiring, no global registration
	lifecycle := employee.NewLifecycle(appLogger)
	employeeRepo := employeepg.NewEmployeeRepository(gormDB,
		[]employee.CreateHook{lifecycle.ProvisionAccount},
		[]employee.UpdateHook{lifecycle.DetectPasswordChange},
	)
	complianceRepo := compliancepg.NewComplianceRepository(gormDB)
	applicationRepo := applicationpg.NewApplicationRepository(gormDB)
	intakeRepo := intakepg.NewSubmissionRepository(gormDB)
	announcementRepo := announcementpg.NewAnnouncementRepository(gormDB)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.JWTAccessSecret,
		config.Security.JWTRefreshSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authStore := authpg.NewRepository(employeeRepo)
	authService := auth.NewService(authStore, tokenGen, config.Security.BCryptCost, appLogger)
	authHandler := auth.NewHandler(base, authService)

	credentials := auth.NewCredentialGenerator(config.Security.BCryptCost)
	applicationService := application.NewService(gormDB, applicationRepo, employeeRepo, credentials, bus, appLogger)
	applicationHandler := application.NewHandler(base, applicationService)

	employeeService := employee.NewService(employeeRepo, complianceRepo, bus, appLogger)
	employeeHandler := employee.NewHandler(base, employeeService)

	intakeService := intake.NewService(intakeRepo, appLogger)
	intakeHandler := intake.NewHandler(base, intakeService)

	announcementService := announcement.NewService(announcementRepo, bus, appLogger)
	announcementHandler := announcement.NewHandler(base, announcementService)

	mailer := notification.NewSMTPMailer(config.Mail)
	notification.NewEventHandler(mailer, config.Mail, appLogger).RegisterHandlers(bus)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, config.Server.AllowedOrigins,
		authHandler, applicationHandler, employeeHandler, intakeHandler, announcementHandler, appLogger)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: router,
		Logger: appLogger,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
