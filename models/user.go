package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a storefront customer. Credentials live in a separate space from
// admin accounts.
type User struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:64" json:"username"`
	Email     string     `gorm:"uniqueIndex;size:128" json:"email"`
	Password  string     `gorm:"size:128" json:"-"`
	FullName  string     `gorm:"size:128" json:"full_name"`
	Phone     string     `gorm:"size:32" json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
