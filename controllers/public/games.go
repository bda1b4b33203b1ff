package public

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

func GetGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Where("is_active = ?", true).Order("created_at asc").Find(&games).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load games")
	}

	return c.JSON(fiber.Map{"games": games})
}

func GetGame(c *fiber.Ctx) error {
	var game models.Game
	if err := database.DB.Where("id = ? AND is_active = ?", c.Params("id"), true).First(&game).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "Game not found")
	}

	return c.JSON(game)
}
