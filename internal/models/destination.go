package models

import (
	"time"

	"gorm.io/gorm"
)

type DestinationType string

const (
	DestinationDomestic      DestinationType = "domestic"
	DestinationInternational DestinationType = "international"
)

const DefaultDestinationIcon = "bi-geo-alt-fill"

func (t DestinationType) Valid() bool {
	return t == DestinationDomestic || t == DestinationInternational
}

type Destination struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string          `json:"name" gorm:"not null"`
	Type      DestinationType `json:"type" gorm:"type:varchar(16);not null;index"`
	ImageURL  string          `json:"imageUrl" gorm:"type:text;not null"`
	FormURL   string          `json:"formUrl" gorm:"type:text;not null"`
	Icon      string          `json:"icon"`
	IsActive  bool            `json:"isActive" gorm:"not null;index"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = NewID()
	}
	return nil
}

type CreateDestinationRequest struct {
	Name     string          `json:"name" validate:"required"`
	Type     DestinationType `json:"type" validate:"required,oneof=domestic international"`
	ImageURL string          `json:"imageUrl" validate:"required"`
	FormURL  string          `json:"formUrl" validate:"required"`
	Icon     *string         `json:"icon"`
	IsActive *bool           `json:"isActive"`
}

// Destination builds a new record with the declared defaults applied.
func (r CreateDestinationRequest) Destination() Destination {
	d := Destination{
		Name:     r.Name,
		Type:     r.Type,
		ImageURL: r.ImageURL,
		FormURL:  r.FormURL,
		Icon:     DefaultDestinationIcon,
		IsActive: true,
	}
	if r.Icon != nil && *r.Icon != "" {
		d.Icon = *r.Icon
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	return d
}

type UpdateDestinationRequest struct {
	Name     *string          `json:"name" validate:"omitnil,min=1"`
	Type     *DestinationType `json:"type" validate:"omitnil,oneof=domestic international"`
	ImageURL *string          `json:"imageUrl" validate:"omitnil,min=1"`
	FormURL  *string          `json:"formUrl" validate:"omitnil,min=1"`
	Icon     *string          `json:"icon"`
	IsActive *bool            `json:"isActive"`
}

// Apply merges the supplied fields over d. Absent fields are left untouched.
func (r UpdateDestinationRequest) Apply(d *Destination) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Type != nil {
		d.Type = *r.Type
	}
	if r.ImageURL != nil {
		d.ImageURL = *r.ImageURL
	}
	if r.FormURL != nil {
		d.FormURL = *r.FormURL
	}
	if r.Icon != nil {
		d.Icon = *r.Icon
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
}

// DestinationFilter narrows destination listings. The zero value lists every
// active destination.
type DestinationFilter struct {
	Type            DestinationType
	IncludeInactive bool
}

func (f DestinationFilter) Match(d *Destination) bool {
	if !f.IncludeInactive && !d.IsActive {
		return false
	}
	return f.Type == "" || d.Type == f.Type
}
