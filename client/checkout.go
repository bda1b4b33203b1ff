package client

import (
	"context"
	"errors"

	"gamestore/models"
)

// ErrNoPackages marks a game that cannot be purchased: without a price
// package there is nothing to buy, so no checkout is offered.
var ErrNoPackages = errors.New("game has no price packages")

// OrderDraft is the composed order payload. Amount, price and currency are
// copied from the selected package and must reach the backend verbatim.
type OrderDraft struct {
	GameID        string `json:"game_id"`
	GameName      string `json:"game_name"`
	PlayerID      string `json:"player_id"`
	Amount        string `json:"amount"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// Checkout is one in-progress purchase. The draft survives failed submits so
// the user can correct and retry.
type Checkout struct {
	c       *Client
	session *UserSession
	Draft   OrderDraft
}

// NewCheckout starts a purchase for one package of one game. Customer fields
// are pre-filled from the session profile when one is active.
func (c *Client) NewCheckout(game models.Game, pkgIndex int, session *UserSession) (*Checkout, error) {
	if len(game.Prices) == 0 {
		return nil, ErrNoPackages
	}
	if pkgIndex < 0 || pkgIndex >= len(game.Prices) {
		return nil, errors.New("price package index out of range")
	}

	pkg := game.Prices[pkgIndex]
	draft := OrderDraft{
		GameID:   game.ID,
		GameName: game.Name,
		Amount:   pkg.Amount,
		Price:    pkg.Price,
		Currency: pkg.Currency,
	}

	if session != nil {
		if p := session.Profile(); p != nil {
			draft.CustomerName = p.FullName
			draft.CustomerPhone = p.Phone
			draft.CustomerEmail = p.Email
		}
	}

	return &Checkout{c: c, session: session, Draft: draft}, nil
}

// OrderResult is the backend's answer to a successful submission. The
// WhatsApp link arrives pre-built; the client opens it as-is.
type OrderResult struct {
	OrderID     string
	WhatsAppURL string
}

// Submit posts the order exactly once. On failure the draft is untouched.
func (ck *Checkout) Submit(ctx context.Context) (*OrderResult, error) {
	if ck.Draft.PlayerID == "" {
		return nil, errors.New("player_id is required")
	}
	if ck.Draft.CustomerName == "" || ck.Draft.CustomerPhone == "" {
		return nil, errors.New("customer_name and customer_phone are required")
	}

	token := ""
	if ck.session != nil {
		token = ck.session.Token()
	}

	var out struct {
		Success     bool   `json:"success"`
		OrderID     string `json:"order_id"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	if err := ck.c.doJSON(ctx, "POST", "/api/orders", token, ck.Draft, &out); err != nil {
		return nil, err
	}

	return &OrderResult{OrderID: out.OrderID, WhatsAppURL: out.WhatsAppURL}, nil
}
