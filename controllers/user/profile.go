package user

import (
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the authenticated customer's profile. Clients use this endpoint
// to validate a stored token on startup.
func Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid authentication")
	}

	return c.JSON(user)
}
