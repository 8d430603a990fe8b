package routes

import (
	"instacash-backend/internal/adapters/http/handlers"
	"instacash-backend/internal/adapters/http/middleware"
	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/config"
	"instacash-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, store *session.Store, cfg *config.Config) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	userRepo := repositories.NewUserRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	loanService := services.NewLoanService(loanRepo, customerRepo)
	authService := services.NewAuthService(userRepo, resetRepo, cfg)
	documentService := services.NewDocumentService(cfg.Upload.Dir)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	customerHandler := handlers.NewCustomerHandler(customerService)
	loanHandler := handlers.NewLoanHandler(loanService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	authHandler := handlers.NewAuthHandler(authService, store)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")

	// Customer & loan routes
	api.Post("/register-customer", customerHandler.Register)
	api.Post("/calculate-loan", loanHandler.Calculate)
	api.Post("/apply-loan", loanHandler.Apply)
	api.Post("/loan-limit", loanHandler.Limit)
	api.Get("/customers/:id/loans", loanHandler.ListByCustomer)

	// Document routes
	api.Post("/upload-documents", documentHandler.Upload)

	// Auth routes
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Post("/forgot-password", middleware.StrictRateLimiter(), authHandler.ForgotPassword)
	api.Post("/reset-password", middleware.StrictRateLimiter(), authHandler.ResetPassword)
	api.Get("/me", middleware.RequireSession(store), authHandler.Me)
}
