package public

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

func GetBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := database.DB.Where("is_active = ?", true).Order("created_at asc").Find(&banners).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load banners")
	}

	return c.JSON(fiber.Map{"banners": banners})
}
