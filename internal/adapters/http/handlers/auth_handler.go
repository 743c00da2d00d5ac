package handlers

import (
	"errors"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
	"github.com/rubayet36/jatri-ovijog/internal/core/services"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration. The created user record is returned as
// the upstream store produced it, password hash included; see DESIGN.md for
// the decision to preserve that contract.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req services.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.Signup(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Name, email and password are required")
		case errors.Is(err, domain.ErrEmailInUse):
			return response.BadRequest(c, "Email already in use")
		case errors.Is(err, domain.ErrUpstream):
			return response.BadGateway(c, "Upstream store request failed")
		default:
			return response.InternalServerError(c, "Failed to sign up")
		}
	}

	return c.JSON(user)
}

// Login authenticates a user and returns a session token with the user record
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Email and password are required")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, domain.ErrUpstream):
			return response.BadGateway(c, "Upstream store request failed")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return c.JSON(result)
}

// Me returns the claims of the presented session token. This is the only
// route behind the Protected middleware; complaint and emergency endpoints
// stay public.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": c.Locals("userID"),
		"role":    c.Locals("role"),
		"subject": c.Locals("subject"),
	})
}
