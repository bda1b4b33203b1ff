package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:256" json:"title"`
	TitleAr   string    `gorm:"size:256" json:"title_ar"`
	Content   string    `json:"content"`
	ContentAr string    `json:"content_ar"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *NewsItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
