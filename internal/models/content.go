package models

import (
	"time"

	"gorm.io/gorm"
)

// Content is one overridable piece of site copy. Key is the lookup handle.
type Content struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedAt time.Time `json:"-"`
}

func (Content) TableName() string {
	return "content"
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// ContentEntry is one key/value pair written to the content store.
type ContentEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ContentUpdate is one element of the admin bulk update payload. Value may be
// empty but must be present.
type ContentUpdate struct {
	Key   string  `json:"key" validate:"required"`
	Value *string `json:"value" validate:"required"`
}

func (u ContentUpdate) Entry() ContentEntry {
	e := ContentEntry{Key: u.Key}
	if u.Value != nil {
		e.Value = *u.Value
	}
	return e
}
