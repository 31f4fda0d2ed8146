package password

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	ModePlaintext = "plaintext"
	ModeBcrypt    = "bcrypt"

	DefaultCost = 10
)

// Hasher turns a password into its stored form and checks candidates
// against that stored form.
type Hasher interface {
	Hash(password string) (string, error)
	Matches(stored, candidate string) bool
}

// New returns the hasher for mode.
func New(mode string) (Hasher, error) {
	switch mode {
	case "", ModePlaintext:
		return Plaintext{}, nil
	case ModeBcrypt:
		return Bcrypt{Cost: DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown password mode %q", mode)
}

// Plaintext stores passwords as given and compares them byte for byte.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

func (Plaintext) Matches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt stores salted bcrypt hashes. Stored values that are not bcrypt
// hashes are compared as plaintext so rows written before switching modes
// keep working.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func (Bcrypt) Matches(stored, candidate string) bool {
	if !IsBcryptHash(stored) {
		return Plaintext{}.Matches(stored, candidate)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	return len(s) == 60 && s[0:2] == "$2"
}
