package models

import "github.com/google/uuid"

// NewID returns a random UUID string used as the primary key of every entity.
func NewID() string {
	return uuid.NewString()
}
