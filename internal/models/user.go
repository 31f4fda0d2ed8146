package models

import (
	"gorm.io/gorm"
)

// User is the back-office account. Password holds whatever the configured
// password mode stores: the raw value in plaintext mode, a bcrypt hash otherwise.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
