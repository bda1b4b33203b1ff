package user

import (
	"strings"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	if req.Username == "" || req.Email == "" || req.Password == "" || req.FullName == "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "username, email, password and full_name are required")
	}
	if !strings.Contains(req.Email, "@") {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid email address")
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Username already taken")
	}
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		FullName: req.FullName,
		Phone:    req.Phone,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	token, err := helpers.GenerateToken(helpers.DomainUser, user.ID, user.Username)
	if err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user_id":      user.ID,
		"username":     user.Username,
	})
}
