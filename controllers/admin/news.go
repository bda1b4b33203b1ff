package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

type NewsRequest struct {
	Title     string `json:"title"`
	TitleAr   string `json:"title_ar"`
	Content   string `json:"content"`
	ContentAr string `json:"content_ar"`
	IsActive  *bool  `json:"is_active"`
}

func (r *NewsRequest) validate() string {
	if r.Title == "" || r.TitleAr == "" {
		return "title and title_ar are required"
	}
	if r.Content == "" || r.ContentAr == "" {
		return "content and content_ar are required"
	}
	return ""
}

func (r *NewsRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func ListNews(c *fiber.Ctx) error {
	var news []models.NewsItem
	if err := database.DB.Order("created_at asc").Find(&news).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	return c.JSON(fiber.Map{"news": news})
}

func CreateNews(c *fiber.Ctx) error {
	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	item := models.NewsItem{
		Title:     req.Title,
		TitleAr:   req.TitleAr,
		Content:   req.Content,
		ContentAr: req.ContentAr,
		IsActive:  req.active(),
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create news")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": item.ID})
}

func UpdateNews(c *fiber.Ctx) error {
	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	var item models.NewsItem
	if err := database.DB.Where("id = ?", c.Params("id")).First(&item).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "News not found")
	}

	item.Title = req.Title
	item.TitleAr = req.TitleAr
	item.Content = req.Content
	item.ContentAr = req.ContentAr
	item.IsActive = req.active()

	if err := database.DB.Save(&item).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to update news")
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteNews(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("id")).Delete(&models.NewsItem{})
	if res.Error != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to delete news")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONDetail(c, fiber.StatusNotFound, "News not found")
	}

	return c.JSON(fiber.Map{"success": true})
}
