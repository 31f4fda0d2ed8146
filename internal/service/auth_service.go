package service

import (
	"context"
	"errors"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/internal/session"
	"github.com/sefazor/ttravel-backend/pkg/password"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo  repository.UserRepository
	sessions  session.Store
	hasher    password.Hasher
	validator *utils.Validator
	logger    *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store, hasher password.Hasher, validator *utils.Validator, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		hasher:    hasher,
		validator: validator,
		logger:    logger.Named("auth"),
	}
}

// Login checks the credentials and opens a session. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*session.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("login rejected", zap.String("username", req.Username), zap.String("reason", "unknown user"))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(user.Password, req.Password) {
		s.logger.Info("login rejected", zap.String("username", req.Username), zap.String("reason", "password mismatch"))
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login succeeded", zap.String("user_id", user.ID))
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token. It has no side effects beyond
// dropping an expired session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Status reports whether token belongs to a live session.
func (s *AuthService) Status(ctx context.Context, token string) models.AuthStatus {
	sess, err := s.Authenticate(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrUnauthenticated) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return models.AuthStatus{}
	}
	return models.AuthStatus{Authenticated: true, Username: sess.Username}
}
