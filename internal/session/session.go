// Package session keeps server-side login state keyed by an opaque token.
// Sessions expire a fixed time after they are issued; expiry is checked when
// a session is read, there is no background sweep.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/sefazor/ttravel-backend/pkg/utils"
)

const (
	DefaultTTL = 24 * time.Hour
	tokenBytes = 32
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Store interface {
	// Create issues a new session for the user.
	Create(ctx context.Context, userID, username string) (*Session, error)
	// Get returns the live session for token, or ErrNotFound when the token is
	// unknown or its session has expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete destroys the session. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}

func newSession(userID, username string, now time.Time, ttl time.Duration) (*Session, error) {
	token, err := utils.GenerateToken(tokenBytes)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}
