package service

import (
	"context"
	"testing"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/internal/session"
	"github.com/sefazor/ttravel-backend/pkg/password"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T, hasher password.Hasher) (*AuthService, *UserService, *repository.Store, *session.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	stored, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NoError(t, store.Users.Create(context.Background(), &models.User{Username: "admin", Password: stored}))

	sessions := session.NewMemoryStore(session.DefaultTTL)
	v := utils.NewValidator()
	log := zap.NewNop()
	return NewAuthService(store.Users, sessions, hasher, v, log), NewUserService(store.Users, hasher, v, log), store, sessions
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth, _, _, _ := newAuthFixture(t, password.Plaintext{})

	sess, err := auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin", sess.Username)

	status := auth.Status(ctx, sess.Token)
	assert.True(t, status.Authenticated)
	assert.Equal(t, "admin", status.Username)

	_, err = auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, models.LoginRequest{Username: "ghost", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, models.LoginRequest{Username: "admin"})
	var verrs utils.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "password", verrs[0].Field)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	auth, _, _, _ := newAuthFixture(t, password.Plaintext{})

	sess, err := auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, sess.Token))
	_, err = auth.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, auth.Status(ctx, sess.Token).Authenticated)

	assert.NoError(t, auth.Logout(ctx, ""))
	assert.NoError(t, auth.Logout(ctx, "unknown"))
}

func TestAuthenticateRejectsEmptyToken(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t, password.Plaintext{})
	_, err := auth.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, models.AuthStatus{}, auth.Status(context.Background(), ""))
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	for _, hasher := range []password.Hasher{password.Plaintext{}, password.Bcrypt{Cost: 4}} {
		auth, users, store, _ := newAuthFixture(t, hasher)
		admin, err := store.Users.GetByUsername(ctx, "admin")
		require.NoError(t, err)

		err = users.ChangePassword(ctx, admin.ID, models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "another1"})
		assert.ErrorIs(t, err, ErrIncorrectPassword)

		err = users.ChangePassword(ctx, admin.ID, models.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "short"})
		var verrs utils.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "newPassword", verrs[0].Field)

		err = users.ChangePassword(ctx, "missing", models.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "another1"})
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, users.ChangePassword(ctx, admin.ID, models.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "another1"}))

		_, err = auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "another1"})
		assert.NoError(t, err)
	}
}

func TestSessionSurvivesUntilExpiry(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	require.NoError(t, store.Users.Create(ctx, &models.User{Username: "admin", Password: "secret1"}))

	sessions := session.NewMemoryStore(time.Hour)
	auth := NewAuthService(store.Users, sessions, password.Plaintext{}, utils.NewValidator(), zap.NewNop())

	sess, err := auth.Login(ctx, models.LoginRequest{Username: "admin", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, sess.ExpiresAt.Sub(sess.IssuedAt))

	got, err := auth.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
}
