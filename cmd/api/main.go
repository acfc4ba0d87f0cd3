// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/slipcheck/platform/internal/auth"
	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/email"
	"github.com/slipcheck/platform/internal/handler"
	"github.com/slipcheck/platform/internal/middleware"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
	"github.com/slipcheck/platform/internal/service"
	"github.com/slipcheck/platform/internal/weather"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service: Sendgrid when a key is present, an SMTP relay
	// otherwise. With neither configured the platform runs invitation-code-only;
	// the services nil-guard delivery.
	var emailService *email.Service
	switch {
	case cfg.Sendgrid.APIKey != "":
		emailService, err = email.NewEmailService(cfg, email.ProviderSendgrid)
	case cfg.SMTP["smtp"].Host != "":
		emailService, err = email.NewEmailService(cfg, email.ProviderSMTP)
	default:
		logger.Warn("no email provider configured, invitation emails disabled")
	}
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize weather client
	weatherClient := weather.NewHTTPClient(cfg)

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordHasher, tokenManager, cfg)
	companyService := service.NewCompanyService(companyRepo, employeeRepo, cfg)
	invitationService := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo, userRepo, emailService, cfg)
	employeeService := service.NewEmployeeService(employeeRepo, companyRepo, siteRepo)
	siteService := service.NewSiteService(siteRepo, companyRepo)
	reportService := service.NewReportService(reportRepo, siteRepo, weatherClient)
	billingService := service.NewBillingService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService, employeeService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	siteHandler := handler.NewSiteHandler(siteService)
	reportHandler := handler.NewReportHandler(reportService)
	billingHandler := handler.NewBillingHandler(billingService, cfg.Billing.WebhookSecret)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthRateLimit(cfg.RateLimit.AuthRequestsPerMinute))

			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		// Billing provider webhook, gated on a shared secret
		r.Post("/billing/webhook", billingHandler.Webhook)

		// Authenticated routes that do not require a company binding
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.Authenticate(tokenManager))

			r.Post("/companies", companyHandler.Create)
			r.Post("/join", invitationHandler.Join)
			r.Get("/me", companyHandler.Profile)
		})

		// Company-scoped routes: the caller must hold an active binding
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokenManager))
			r.Use(middleware.RequireEmployee(employeeRepo, companyRepo))

			// Reads are never gated on billing state
			r.Get("/company", companyHandler.Get)
			r.Get("/employees", employeeHandler.List)
			r.Get("/invitations", invitationHandler.List)
			r.Get("/sites", siteHandler.List)
			r.Get("/sites/{id}", siteHandler.Get)
			r.Get("/reports", reportHandler.List)
			r.Get("/reports/export", reportHandler.Export)

			// Billed mutations
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireActiveSubscription(userRepo))

				r.Patch("/company", companyHandler.UpdateSettings)
				r.Delete("/company", companyHandler.Deactivate)

				r.Post("/invitations", invitationHandler.Create)
				r.Delete("/invitations/{id}", invitationHandler.Revoke)

				r.Patch("/employees/{id}", employeeHandler.Update)
				r.Delete("/employees/{id}", employeeHandler.Remove)

				r.Post("/sites", siteHandler.Create)
				r.Put("/sites/{id}", siteHandler.Update)
				r.Delete("/sites/{id}", siteHandler.Delete)

				r.Post("/reports", reportHandler.Create)
				r.Put("/reports/{id}", reportHandler.Update)
				r.Post("/reports/{id}/submit", reportHandler.Submit)
				r.Delete("/reports/{id}", reportHandler.Delete)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Unique violations come back as gorm.ErrDuplicatedKey so the
		// repositories can map them to domain errors.
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Employee{},
		&model.Invitation{},
		&model.Site{},
		&model.Report{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
