package middlewares

import (
	"gamestore/helpers"

	"github.com/gofiber/fiber/v2"
)

func AdminAuth(c *fiber.Ctx) error {
	token := helpers.BearerToken(c)
	if token == "" {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := helpers.ParseToken(token, helpers.DomainAdmin)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid authentication")
	}

	c.Locals("admin", claims.Username)
	return c.Next()
}
