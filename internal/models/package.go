package models

import (
	"time"

	"gorm.io/gorm"
)

// Package is a sellable tour. DestinationID is a weak reference: nothing
// cascades when the destination goes away.
type Package struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DestinationID  string    `json:"destinationId" gorm:"type:varchar(36);not null;index"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	ImageURL       string    `json:"imageUrl" gorm:"type:text;not null"`
	PricePerPerson string    `json:"pricePerPerson" gorm:"not null"`
	Duration       string    `json:"duration" gorm:"not null"`
	Highlights     []string  `json:"highlights" gorm:"type:json;serializer:json;not null"`
	Location       string    `json:"location" gorm:"not null"`
	BuyNowURL      string    `json:"buyNowUrl" gorm:"type:text;not null"`
	IsFeatured     bool      `json:"isFeatured" gorm:"not null"`
	IsActive       bool      `json:"isActive" gorm:"not null;index"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// Clone returns a copy that shares no slice memory with p.
func (p Package) Clone() Package {
	p.Highlights = append([]string(nil), p.Highlights...)
	return p
}

type CreatePackageRequest struct {
	DestinationID  string   `json:"destinationId" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	ImageURL       string   `json:"imageUrl" validate:"required"`
	PricePerPerson string   `json:"pricePerPerson" validate:"required"`
	Duration       string   `json:"duration" validate:"required"`
	Highlights     []string `json:"highlights" validate:"required,min=1,dive,required"`
	Location       string   `json:"location" validate:"required"`
	BuyNowURL      string   `json:"buyNowUrl" validate:"required"`
	IsFeatured     *bool    `json:"isFeatured"`
	IsActive       *bool    `json:"isActive"`
}

func (r CreatePackageRequest) Package() Package {
	p := Package{
		DestinationID:  r.DestinationID,
		Name:           r.Name,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		PricePerPerson: r.PricePerPerson,
		Duration:       r.Duration,
		Highlights:     append([]string(nil), r.Highlights...),
		Location:       r.Location,
		BuyNowURL:      r.BuyNowURL,
		IsActive:       true,
	}
	if r.IsFeatured != nil {
		p.IsFeatured = *r.IsFeatured
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}

type UpdatePackageRequest struct {
	DestinationID  *string   `json:"destinationId" validate:"omitnil,min=1"`
	Name           *string   `json:"name" validate:"omitnil,min=1"`
	Description    *string   `json:"description" validate:"omitnil,min=1"`
	ImageURL       *string   `json:"imageUrl" validate:"omitnil,min=1"`
	PricePerPerson *string   `json:"pricePerPerson" validate:"omitnil,min=1"`
	Duration       *string   `json:"duration" validate:"omitnil,min=1"`
	Highlights     *[]string `json:"highlights" validate:"omitnil,min=1,dive,required"`
	Location       *string   `json:"location" validate:"omitnil,min=1"`
	BuyNowURL      *string   `json:"buyNowUrl" validate:"omitnil,min=1"`
	IsFeatured     *bool     `json:"isFeatured"`
	IsActive       *bool     `json:"isActive"`
}

func (r UpdatePackageRequest) Apply(p *Package) {
	if r.DestinationID != nil {
		p.DestinationID = *r.DestinationID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.PricePerPerson != nil {
		p.PricePerPerson = *r.PricePerPerson
	}
	if r.Duration != nil {
		p.Duration = *r.Duration
	}
	if r.Highlights != nil {
		p.Highlights = append([]string(nil), (*r.Highlights)...)
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.BuyNowURL != nil {
		p.BuyNowURL = *r.BuyNowURL
	}
	if r.IsFeatured != nil {
		p.IsFeatured = *r.IsFeatured
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

// PackageFilter narrows package listings. The zero value lists active packages.
type PackageFilter struct {
	DestinationID   string
	FeaturedOnly    bool
	IncludeInactive bool
}

func (f PackageFilter) Match(p *Package) bool {
	if !f.IncludeInactive && !p.IsActive {
		return false
	}
	if f.DestinationID != "" && p.DestinationID != f.DestinationID {
		return false
	}
	if f.FeaturedOnly && !p.IsFeatured {
		return false
	}
	return true
}
