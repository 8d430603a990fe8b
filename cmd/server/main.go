package main

import (
	"os"
	"os/signal"
	"syscall"

	"instacash-backend/internal/adapters/http/middleware"
	"instacash-backend/internal/adapters/http/routes"
	"instacash-backend/internal/adapters/persistence/models"
	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/config"
	"instacash-backend/internal/core/services"
	"instacash-backend/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(cfg.IsDev())

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}
	log.Info().Msg("database migration completed")

	// Start cron service (daily reset token purge)
	cronService := services.NewCronService(repositories.NewPasswordResetRepository(db))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "InstaCash Loan API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Session store for login sessions
	store := middleware.NewSessionStore(cfg)

	// Setup routes
	routes.Setup(app, db, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Get().Error().Err(err).Msg("error during shutdown")
	}
}
