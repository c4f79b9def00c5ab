package middleware

import (
	"strings"

	"go-shop-pos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireOwner validates the owner bearer token on mutating routes.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil || claims.Role != jwt.RoleOwner {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("shop", claims.Shop)
		return c.Next()
	}
}
