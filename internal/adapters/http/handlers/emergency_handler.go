package handlers

import (
	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
	"github.com/rubayet36/jatri-ovijog/internal/core/services"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmergencyHandler handles emergency report endpoints
type EmergencyHandler struct {
	emergencyService *services.EmergencyService
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(emergencyService *services.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{emergencyService: emergencyService}
}

// List returns all emergency reports verbatim from the upstream store
func (h *EmergencyHandler) List(c *fiber.Ctx) error {
	reports, err := h.emergencyService.List(c.Context())
	if err != nil {
		return response.BadGateway(c, "Upstream store request failed")
	}
	return c.JSON(reports)
}

// Create accepts an emergency payload (location, accuracy, optional audio
// recording URL) and returns the created record
func (h *EmergencyHandler) Create(c *fiber.Ctx) error {
	var payload domain.Record
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	report, err := h.emergencyService.Create(c.Context(), payload)
	if err != nil {
		return response.BadGateway(c, "Upstream store request failed")
	}
	return c.JSON(report)
}
