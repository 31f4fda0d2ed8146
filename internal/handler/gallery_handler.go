package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	logger         *zap.Logger
}

func NewGalleryHandler(galleryService *service.GalleryService, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		logger:         logger,
	}
}

// List returns approved images only.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	images, err := h.galleryService.List(c.UserContext(), true)
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch gallery images"})
	}
	return c.JSON(images)
}

func (h *GalleryHandler) Submit(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid image data", failed: "Failed to upload image"}

	var req models.CreateGalleryImageRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	image, err := h.galleryService.Submit(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Image uploaded successfully! It will be reviewed before appearing in the gallery.", fiber.Map{"image": image})
}

func (h *GalleryHandler) AdminList(c *fiber.Ctx) error {
	images, err := h.galleryService.List(c.UserContext(), false)
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch gallery images"})
	}
	return c.JSON(images)
}

func (h *GalleryHandler) Approve(c *fiber.Ctx) error {
	image, err := h.galleryService.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.logger, err, messages{notFound: "Image not found", failed: "Failed to approve image"})
	}
	return acknowledge(c, "Image approved successfully", fiber.Map{"image": image})
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.galleryService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, h.logger, err, messages{notFound: "Image not found", failed: "Failed to delete image"})
	}
	return acknowledge(c, "Image deleted successfully", nil)
}
