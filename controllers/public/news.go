package public

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

func GetNews(c *fiber.Ctx) error {
	var news []models.NewsItem
	if err := database.DB.Where("is_active = ?", true).Order("created_at asc").Find(&news).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	return c.JSON(fiber.Map{"news": news})
}
