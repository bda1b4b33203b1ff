package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Stats summarizes submitted orders for the back-office dashboard. Prices are
// stored verbatim as strings, so entries that do not parse as numbers are
// counted but excluded from the revenue sums.
func Stats(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.DB.Find(&orders).Error; err != nil {
		return helpers.JSONDetail(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	pending := 0
	revenue := map[string]decimal.Decimal{}
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			pending++
		}
		price, err := decimal.NewFromString(o.Price)
		if err != nil {
			continue
		}
		revenue[o.Currency] = revenue[o.Currency].Add(price)
	}

	revenueOut := make(map[string]string, len(revenue))
	for currency, total := range revenue {
		revenueOut[currency] = total.String()
	}

	return c.JSON(fiber.Map{
		"total_orders":   len(orders),
		"pending_orders": pending,
		"revenue":        revenueOut,
	})
}
