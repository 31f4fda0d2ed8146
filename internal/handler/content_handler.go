package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

type ContentHandler struct {
	contentService *service.ContentService
	logger         *zap.Logger
}

func NewContentHandler(contentService *service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// Map returns the site copy as a flat key -> value object.
func (h *ContentHandler) Map(c *fiber.Ctx) error {
	content, err := h.contentService.Map(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch content"})
	}
	return c.JSON(content)
}

func (h *ContentHandler) List(c *fiber.Ctx) error {
	content, err := h.contentService.List(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch content"})
	}
	return c.JSON(content)
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid content data", failed: "Failed to update content"}

	var updates []models.ContentUpdate
	if err := decode(c, &updates); err != nil {
		return fail(c, h.logger, err, m)
	}

	content, err := h.contentService.Update(c.UserContext(), updates)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Content updated successfully", fiber.Map{"content": content})
}
