package handlers

import (
	"context"

	"github.com/rubayet36/jatri-ovijog/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Pinger checks upstream store reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚌 Jatri Ovijog API is running",
		"mode":    config.AppConfig.AppMode,
	})
}

// HealthCheck reports API liveness and upstream store reachability
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	upstream := "healthy"
	if err := h.store.Ping(c.Context()); err != nil {
		upstream = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"upstream": upstream,
		},
	})
}
