package middleware

import (
	"errors"
	"strings"

	"github.com/rubayet36/jatri-ovijog/internal/pkg/jwt"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Protected creates authentication middleware validating Bearer session
// tokens. Only /api/auth/me sits behind it; the complaint and emergency
// endpoints are public, matching the permit-all policy of the frontend this
// API serves.
func Protected(tokens *jwt.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access token required")
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals("subject", claims.Subject)

		return c.Next()
	}
}
