package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "bizcelona-backend/internal/api/http"
	"bizcelona-backend/internal/config"
	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository/postgres"
	"bizcelona-backend/internal/security"
	"bizcelona-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local .env is optional; hosted environments inject variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bizcelona Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema migrations
	if err := postgres.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.ExpiryMinutes)*time.Minute)

	// Initialize Services
	mailer := service.NewSendGridMailer(cfg.Email.APIKey)
	notificationSvc := service.NewNotificationService(
		store.ProfileRepository,
		store.ApplicationRepository,
		mailer,
		cfg.Email,
		cfg.App.BaseURL,
	)
	authSvc := service.NewAuthService(store.ProfileRepository, tokenManager, notificationSvc)
	applicationSvc := service.NewApplicationService(store.ApplicationRepository, store.ProfileRepository, store.MemberRepository, notificationSvc)
	reviewSvc := service.NewReviewService(store.ApplicationRepository, notificationSvc)
	guard := service.NewAccessGuard(store.AdminRepository)

	// Build the HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Applications:  applicationSvc,
		Reviews:       reviewSvc,
		Notifications: notificationSvc,
		Guard:         guard,
		Tokens:        tokenManager,
		Store:         store,
		Profiles:      store.ProfileRepository,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	if err := server.Close(); err != nil {
		logger.Error("Error during shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
