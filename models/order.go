package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is a snapshot taken at checkout time. Game name, amount, price and
// currency are copied verbatim from the selected package; later catalog edits
// never touch existing orders.
type Order struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	GameID        string    `gorm:"size:36;index" json:"game_id"`
	GameName      string    `gorm:"size:128" json:"game_name"`
	PlayerID      string    `gorm:"size:64" json:"player_id"`
	Amount        string    `gorm:"size:64" json:"amount"`
	Price         string    `gorm:"size:32" json:"price"`
	Currency      string    `gorm:"size:16" json:"currency"`
	CustomerName  string    `gorm:"size:128" json:"customer_name"`
	CustomerPhone string    `gorm:"size:32" json:"customer_phone"`
	CustomerEmail string    `gorm:"size:128" json:"customer_email,omitempty"`
	UserID        string    `gorm:"size:36;index" json:"-"`
	Status        string    `gorm:"size:16;default:'pending';index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}
