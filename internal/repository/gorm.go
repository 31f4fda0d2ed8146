package repository

import (
	"errors"

	"gorm.io/gorm"
)

// NewGormStore returns a Store backed by db. Tables must already be migrated.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewUserRepository(db),
		Destinations: NewDestinationRepository(db),
		Content:      NewContentRepository(db),
		Contacts:     NewContactRepository(db),
		Newsletter:   NewNewsletterRepository(db),
		Packages:     NewPackageRepository(db),
		Gallery:      NewGalleryRepository(db),
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

// requireRow turns a zero RowsAffected into ErrNotFound.
func requireRow(result *gorm.DB) error {
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
