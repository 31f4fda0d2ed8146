package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactResponded ContactStatus = "responded"
)

type ContactSubmission struct {
	ID        string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string        `json:"firstName" gorm:"not null"`
	LastName  string        `json:"lastName" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null;index"`
	Subject   string        `json:"subject" gorm:"not null"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Status    ContactStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.Status == "" {
		c.Status = ContactPending
	}
	return nil
}

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type UpdateContactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"required,oneof=pending responded"`
}
