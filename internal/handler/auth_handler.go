package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/middleware"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

// CookieSettings controls the session cookie written on login.
type CookieSettings struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	cookie      CookieSettings
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, cookie CookieSettings, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		cookie:      cookie,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, messages{invalid: "Invalid request data"})
	}

	sess, err := h.authService.Login(c.UserContext(), req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	}
	if err != nil {
		return fail(c, h.logger, err, messages{invalid: "Invalid request data", failed: "Failed to log in"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return acknowledge(c, "Login successful", nil)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext(), c.Cookies(h.cookie.Name)); err != nil {
		h.logger.Warn("failed to destroy session", zap.Error(err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return acknowledge(c, "Logout successful", nil)
}

func (h *AuthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(h.authService.Status(c.UserContext(), c.Cookies(h.cookie.Name)))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid password data", notFound: "User not found", failed: "Failed to change password"}

	userID := middleware.UserID(c)
	if userID == "" {
		return unauthorized(c)
	}

	var req models.ChangePasswordRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	err := h.userService.ChangePassword(c.UserContext(), userID, req)
	if errors.Is(err, service.ErrIncorrectPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Current password is incorrect"))
	}
	if err != nil {
		return fail(c, h.logger, err, m)
	}

	return acknowledge(c, "Password changed successfully", nil)
}
