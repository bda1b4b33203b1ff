package user

import (
	"time"

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

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helpers.JSONDetail(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	now := time.Now()
	user.LastLogin = &now
	database.DB.Model(&user).Update("last_login", now)

	token, err := helpers.GenerateToken(helpers.DomainUser, user.ID, user.Username)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user_id":      user.ID,
		"username":     user.Username,
	})
}
