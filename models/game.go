package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PricePackage is one purchasable tier of a game. All fields are kept as
// strings so labels like "70 عملة" and prices like "5" survive verbatim.
type PricePackage struct {
	Amount   string `json:"amount"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type Game struct {
	ID            string                            `gorm:"primaryKey;size:36" json:"id"`
	Name          string                            `gorm:"size:128" json:"name"`
	NameAr        string                            `gorm:"size:128" json:"name_ar"`
	Description   string                            `json:"description"`
	DescriptionAr string                            `json:"description_ar"`
	ImageURL      string                            `gorm:"size:512" json:"image_url"`
	Prices        datatypes.JSONSlice[PricePackage] `gorm:"type:jsonb" json:"prices"`
	IsActive      bool                              `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time                         `json:"created_at"`
	UpdatedAt     time.Time                         `json:"updated_at"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}
