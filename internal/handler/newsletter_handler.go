package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

type NewsletterHandler struct {
	newsletterService *service.NewsletterService
	logger            *zap.Logger
}

func NewNewsletterHandler(newsletterService *service.NewsletterService, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		logger:            logger,
	}
}

func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid email address", failed: "Failed to subscribe to newsletter"}

	var req models.SubscribeRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	if _, _, err := h.newsletterService.Subscribe(c.UserContext(), req); err != nil {
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Successfully subscribed to newsletter", nil)
}

// Unsubscribe answers the same way whether or not the email was subscribed.
func (h *NewsletterHandler) Unsubscribe(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid email address", failed: "Failed to unsubscribe from newsletter"}

	var req models.SubscribeRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	if err := h.newsletterService.Unsubscribe(c.UserContext(), req); err != nil {
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Successfully unsubscribed from newsletter", nil)
}

func (h *NewsletterHandler) List(c *fiber.Ctx) error {
	subscriptions, err := h.newsletterService.List(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch newsletter subscriptions"})
	}
	return c.JSON(subscriptions)
}

func (h *NewsletterHandler) Delete(c *fiber.Ctx) error {
	if err := h.newsletterService.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, h.logger, err, messages{notFound: "Subscription not found", failed: "Failed to delete subscription"})
	}
	return acknowledge(c, "Subscription deleted successfully", nil)
}
