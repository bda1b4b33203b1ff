package middlewares

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuth(c *fiber.Ctx) error {
	token := helpers.BearerToken(c)
	if token == "" {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := helpers.ParseToken(token, helpers.DomainUser)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid authentication")
	}

	var user models.User
	if err := database.DB.Where("id = ?", claims.Subject).First(&user).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid authentication")
	}

	c.Locals("user", user)
	return c.Next()
}
