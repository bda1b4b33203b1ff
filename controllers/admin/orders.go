package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

// ListOrders is read-only: the back office inspects submitted orders but
// never edits them.
func ListOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.DB.Order("created_at desc").Find(&orders).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	return c.JSON(fiber.Map{"orders": orders})
}
