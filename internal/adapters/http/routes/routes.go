package routes

import (
	"github.com/rubayet36/jatri-ovijog/internal/adapters/http/handlers"
	"github.com/rubayet36/jatri-ovijog/internal/adapters/http/middleware"
	"github.com/rubayet36/jatri-ovijog/internal/adapters/persistence/supabase"
	"github.com/rubayet36/jatri-ovijog/internal/config"
	"github.com/rubayet36/jatri-ovijog/internal/core/services"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *supabase.Client, cfg *config.Config) {
	tokens := jwt.New(cfg.JWT.Secret, cfg.JWT.Expiration())

	// Initialize services
	authService := services.NewAuthService(store, tokens)
	complaintService := services.NewComplaintService(store)
	emergencyService := services.NewEmergencyService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	authHandler := handlers.NewAuthHandler(authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth routes (signup/login public, stricter rate limit)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", middleware.AuthRateLimiter(), authHandler.Signup)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", middleware.Protected(tokens), authHandler.Me)

	// Complaint routes (public)
	complaintRoutes := api.Group("/complaints")
	complaintRoutes.Get("/", complaintHandler.List)
	complaintRoutes.Post("/", complaintHandler.Create)
	complaintRoutes.Patch("/:id/status", complaintHandler.UpdateStatus)

	// Emergency routes (public)
	emergencyRoutes := api.Group("/emergencies")
	emergencyRoutes.Get("/", emergencyHandler.List)
	emergencyRoutes.Post("/", emergencyHandler.Create)
}
