package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/infrastructure/database"
	"github.com/tillpoint/tillpoint-api/internal/infrastructure/repository"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/handler"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/routes"
	"github.com/tillpoint/tillpoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed the owner account, default branch and business profile
	if err := database.SeedDefaultData(db, &cfg.Seed); err != nil {
		logrus.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	saleService := service.NewSaleService(saleRepo, branchRepo, settingsRepo)
	reportService := service.NewReportService(branchRepo, analyticsRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	branchService := service.NewBranchService(branchRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Sale:     handler.NewSaleHandler(saleService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Branch:   handler.NewBranchHandler(branchService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	logrus.WithField("port", cfg.App.Port).Info("Starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
