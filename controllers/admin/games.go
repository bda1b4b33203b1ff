package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type GameRequest struct {
	Name          string                `json:"name"`
	NameAr        string                `json:"name_ar"`
	Description   string                `json:"description"`
	DescriptionAr string                `json:"description_ar"`
	ImageURL      string                `json:"image_url"`
	Prices        []models.PricePackage `json:"prices"`
	IsActive      *bool                 `json:"is_active"`
}

func (r *GameRequest) validate() string {
	switch {
	case r.Name == "" || r.NameAr == "":
		return "name and name_ar are required"
	case r.ImageURL == "":
		return "image_url is required"
	case len(r.Prices) == 0:
		return "at least one price package is required"
	}
	for _, p := range r.Prices {
		if p.Amount == "" || p.Price == "" || p.Currency == "" {
			return "every price package needs amount, price and currency"
		}
	}
	return ""
}

func (r *GameRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func ListGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Order("created_at asc").Find(&games).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load games")
	}

	return c.JSON(fiber.Map{"games": games})
}

func CreateGame(c *fiber.Ctx) error {
	var req GameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	game := models.Game{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
		Prices:        datatypes.NewJSONSlice(req.Prices),
		IsActive:      req.active(),
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create game")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": game.ID})
}

func UpdateGame(c *fiber.Ctx) error {
	var req GameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	var game models.Game
	if err := database.DB.Where("id = ?", c.Params("id")).First(&game).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "Game not found")
	}

	game.Name = req.Name
	game.NameAr = req.NameAr
	game.Description = req.Description
	game.DescriptionAr = req.DescriptionAr
	game.ImageURL = req.ImageURL
	game.Prices = datatypes.NewJSONSlice(req.Prices)
	game.IsActive = req.active()

	if err := database.DB.Save(&game).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to update game")
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteGame(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("id")).Delete(&models.Game{})
	if res.Error != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to delete game")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "Game not found")
	}

	return c.JSON(fiber.Map{"success": true})
}
