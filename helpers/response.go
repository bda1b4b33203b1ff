package helpers

import (
	"github.com/gofiber/fiber/v2"
)

// JSONDetail writes the error body shape the storefront expects: {"detail": msg}.
func JSONDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{
		"detail": detail,
	})
}
