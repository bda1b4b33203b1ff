package helpers

import (
	"net/url"
	"os"
	"strings"

	"gamestore/models"
)

// WhatsAppOrderURL builds the wa.me deep link the storefront opens after a
// successful checkout. The message is an Arabic order summary; the target
// number comes from WHATSAPP_PHONE.
func WhatsAppOrderURL(order *models.Order) string {
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = "967777826667"
	}

	lines := []string{
		"طلب جديد",
		"----",
		"اللعبة: " + order.GameName,
		"الآي دي: " + order.PlayerID,
		"الكمية: " + order.Amount,
		"السعر: " + order.Price + " " + order.Currency,
		"اسم العميل: " + order.CustomerName,
		"رقم الهاتف: " + order.CustomerPhone,
		"----",
		"رقم الطلب: " + order.ID,
	}

	text := url.QueryEscape(strings.Join(lines, "\n"))
	text = strings.ReplaceAll(text, "+", "%20")

	return "https://wa.me/" + phone + "?text=" + text
}
