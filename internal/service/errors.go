package service

import (
	"errors"

	"github.com/sefazor/ttravel-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrUnauthenticated    = errors.New("authentication required")

	// ErrNotFound is returned for unknown ids, so handlers only need this package.
	ErrNotFound = repository.ErrNotFound
)
