package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	var admin models.Admin
	if err := database.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := helpers.GenerateToken(helpers.DomainAdmin, admin.ID, admin.Username)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"message": "Login successful",
	})
}
