package user

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

// ListOrders returns only the caller's orders: submitted while logged in, or
// submitted anonymously with the account's email.
func ListOrders(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid authentication")
	}

	var orders []models.Order
	err := database.DB.
		Where("user_id = ? OR (customer_email <> '' AND customer_email = ?)", user.ID, user.Email).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	return c.JSON(fiber.Map{"orders": orders})
}
