package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage is a visitor-submitted travel photo awaiting or past moderation.
// ImageURL is either a link or an embedded data URI; StorageKey is set when
// the bytes were offloaded to the bucket.
type GalleryImage struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ImageURL      string    `json:"imageUrl" gorm:"type:text;not null"`
	Title         string    `json:"title" gorm:"not null"`
	Review        string    `json:"review" gorm:"type:text;not null"`
	UploaderName  string    `json:"uploaderName" gorm:"not null"`
	UploaderEmail string    `json:"uploaderEmail" gorm:"not null"`
	IsApproved    bool      `json:"isApproved" gorm:"not null;index"`
	StorageKey    string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = NewID()
	}
	return nil
}

type CreateGalleryImageRequest struct {
	ImageURL      string `json:"imageUrl" validate:"required,image_ref"`
	Title         string `json:"title" validate:"required"`
	Review        string `json:"review" validate:"required"`
	UploaderName  string `json:"uploaderName" validate:"required"`
	UploaderEmail string `json:"uploaderEmail" validate:"required,email"`
}
