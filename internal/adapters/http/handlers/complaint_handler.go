package handlers

import (
	"errors"
	"strings"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
	"github.com/rubayet36/jatri-ovijog/internal/core/services"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// UpdateStatusRequest represents a status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// List returns all complaints verbatim from the upstream store
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	complaints, err := h.complaintService.List(c.Context())
	if err != nil {
		return response.BadGateway(c, "Upstream store request failed")
	}
	return c.JSON(complaints)
}

// Create accepts an arbitrary complaint payload, keeps only the whitelisted
// columns and returns the created record
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var payload domain.Record
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	complaint, err := h.complaintService.Create(c.Context(), payload)
	if err != nil {
		return response.BadGateway(c, "Upstream store request failed")
	}
	return c.JSON(complaint)
}

// UpdateStatus patches the status of one complaint, rejecting values outside
// the fixed set
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid complaint id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	complaint, err := h.complaintService.UpdateStatus(c.Context(), int64(id), req.Status, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status. Allowed: "+strings.Join(domain.AllowedStatuses, ", "))
		case errors.Is(err, domain.ErrUpstream):
			return response.BadGateway(c, "Upstream store request failed")
		default:
			return response.InternalServerError(c, "Failed to update complaint status")
		}
	}
	return c.JSON(complaint)
}
