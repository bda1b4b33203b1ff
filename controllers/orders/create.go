package orders

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	GameID        string `json:"game_id"`
	GameName      string `json:"game_name"`
	PlayerID      string `json:"player_id"`
	Amount        string `json:"amount"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

func (r *CreateOrderRequest) validate() string {
	switch {
	case r.GameID == "":
		return "game_id is required"
	case r.PlayerID == "":
		return "player_id is required"
	case r.Amount == "" || r.Price == "" || r.Currency == "":
		return "amount, price and currency are required"
	case r.CustomerName == "":
		return "customer_name is required"
	case r.CustomerPhone == "":
		return "customer_phone is required"
	}
	return ""
}

// CreateOrder records one order snapshot and hands back the WhatsApp deep
// link the storefront opens to finish the purchase. Anonymous checkout is
// allowed; a customer bearer token, when present, ties the order to the
// account.
func CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if msg := req.validate(); msg != "" {
		return helpers.JSONDetail(c, fiber.StatusBadRequest, msg)
	}

	gameName := req.GameName
	var game models.Game
	if err := database.DB.Where("id = ?", req.GameID).First(&game).Error; err == nil {
		gameName = game.Name
	}

	order := models.Order{
		GameID:        req.GameID,
		GameName:      gameName,
		PlayerID:      req.PlayerID,
		Amount:        req.Amount,
		Price:         req.Price,
		Currency:      req.Currency,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Status:        models.OrderStatusPending,
	}

	if token := helpers.BearerToken(c); token != "" {
		if claims, err := helpers.ParseToken(token, helpers.DomainUser); err == nil {
			order.UserID = claims.Subject
		}
	}

	if err := database.DB.Create(&order).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"order_id":     order.ID,
		"whatsapp_url": helpers.WhatsAppOrderURL(&order),
	})
}
