package response

import "github.com/gofiber/fiber/v2"

// Response represents a standard API error response
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// BadGateway sends a 502 bad gateway response
func BadGateway(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
