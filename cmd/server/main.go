package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rubayet36/jatri-ovijog/internal/adapters/http/middleware"
	"github.com/rubayet36/jatri-ovijog/internal/adapters/http/routes"
	"github.com/rubayet36/jatri-ovijog/internal/adapters/persistence/supabase"
	"github.com/rubayet36/jatri-ovijog/internal/config"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Upstream Supabase store client, shared by all requests
	store := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Jatri Ovijog API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
