package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

type BannerRequest struct {
	Title    string `json:"title"`
	TitleAr  string `json:"title_ar"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
	IsActive *bool  `json:"is_active"`
}

func (r *BannerRequest) validate() string {
	if r.Title == "" || r.TitleAr == "" {
		return "title and title_ar are required"
	}
	if r.ImageURL == "" {
		return "image_url is required"
	}
	return ""
}

func (r *BannerRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func ListBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := database.DB.Order("created_at asc").Find(&banners).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load banners")
	}

	return c.JSON(fiber.Map{"banners": banners})
}

func CreateBanner(c *fiber.Ctx) error {
	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	banner := models.Banner{
		Title:    req.Title,
		TitleAr:  req.TitleAr,
		ImageURL: req.ImageURL,
		Link:     req.Link,
		IsActive: req.active(),
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create banner")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": banner.ID})
}

func UpdateBanner(c *fiber.Ctx) error {
	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	var banner models.Banner
	if err := database.DB.Where("id = ?", c.Params("id")).First(&banner).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "Banner not found")
	}

	banner.Title = req.Title
	banner.TitleAr = req.TitleAr
	banner.ImageURL = req.ImageURL
	banner.Link = req.Link
	banner.IsActive = req.active()

	if err := database.DB.Save(&banner).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to update banner")
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteBanner(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("id")).Delete(&models.Banner{})
	if res.Error != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "Banner not found")
	}

	return c.JSON(fiber.Map{"success": true})
}
