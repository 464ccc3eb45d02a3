package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository/postgres"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	screeningSvc := service.NewScreeningService(store.ApplicantRepository, emailSvc)
	enrollmentSvc := service.NewEnrollmentService(
		store.EnrollmentRepository,
		store.IdeaRepository,
		store.ApplicantRepository,
		emailSvc,
		cfg.Recruiting,
	)
	rosterSvc := service.NewRosterService(store.IdeaRepository)

	// Initialize HTTP handlers
	adminHandler := httpapi.NewAdminHandler(screeningSvc)
	enrollmentHandler := httpapi.NewEnrollmentHandler(enrollmentSvc)
	rosterHandler := httpapi.NewRosterHandler(rosterSvc)

	router := httpapi.NewRouter(authMiddleware, adminHandler, enrollmentHandler, rosterHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
