package models

import (
	"time"

	"gorm.io/gorm"
)

type NewsletterSubscription struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"isActive" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

func (n *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = NewID()
	}
	return nil
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
