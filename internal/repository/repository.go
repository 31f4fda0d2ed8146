package repository

import (
	"context"
	"errors"

	"github.com/sefazor/ttravel-backend/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, password string) error
}

type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error)
	Create(ctx context.Context, destination *models.Destination) error
	// Update loads the row, lets apply merge changes into it and stores the
	// result as one atomic step.
	Update(ctx context.Context, id string, apply func(*models.Destination)) (*models.Destination, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type ContentRepository interface {
	List(ctx context.Context) ([]models.Content, error)
	GetByKey(ctx context.Context, key string) (*models.Content, error)
	// Upsert writes every entry or none of them. Results follow input order.
	Upsert(ctx context.Context, entries []models.ContentEntry) ([]models.Content, error)
}

type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	// List returns submissions newest first.
	List(ctx context.Context) ([]models.ContactSubmission, error)
	Create(ctx context.Context, contact *models.ContactSubmission) error
	SetStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactSubmission, error)
}

// SubscribeOutcome tells callers what Subscribe did with the email.
type SubscribeOutcome int

const (
	SubscribeCreated SubscribeOutcome = iota
	SubscribeReactivated
	SubscribeExisting
)

type NewsletterRepository interface {
	GetByID(ctx context.Context, id string) (*models.NewsletterSubscription, error)
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	List(ctx context.Context, includeInactive bool) ([]models.NewsletterSubscription, error)
	// Subscribe creates a row for a new email, reactivates an inactive one and
	// leaves an active one alone. There is never more than one row per email.
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscription, SubscribeOutcome, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*models.Package, error)
	List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error)
	Create(ctx context.Context, pkg *models.Package) error
	Update(ctx context.Context, id string, apply func(*models.Package)) (*models.Package, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type GalleryRepository interface {
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	List(ctx context.Context, approvedOnly bool) ([]models.GalleryImage, error)
	Create(ctx context.Context, image *models.GalleryImage) error
	Approve(ctx context.Context, id string) (*models.GalleryImage, error)
	// Delete removes the row and returns it so attached objects can be cleaned up.
	Delete(ctx context.Context, id string) (*models.GalleryImage, error)
}

// Store bundles one repository per entity. Build it with NewMemoryStore or
// NewGormStore and hand it to the services.
type Store struct {
	Users        UserRepository
	Destinations DestinationRepository
	Content      ContentRepository
	Contacts     ContactRepository
	Newsletter   NewsletterRepository
	Packages     PackageRepository
	Gallery      GalleryRepository
}
