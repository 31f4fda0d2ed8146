package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

var destinationMessages = messages{
	invalid:  "Invalid destination data",
	notFound: "Destination not found",
}

type DestinationHandler struct {
	destinationService *service.DestinationService
	logger             *zap.Logger
}

func NewDestinationHandler(destinationService *service.DestinationService, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinationService: destinationService,
		logger:             logger,
	}
}

func (h *DestinationHandler) List(c *fiber.Ctx) error {
	destinations, err := h.destinationService.List(c.UserContext(), false)
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch destinations"})
	}
	return c.JSON(destinations)
}

func (h *DestinationHandler) ListByType(c *fiber.Ctx) error {
	destinations, err := h.destinationService.ListByType(c.UserContext(), c.Params("type"))
	if err != nil {
		return fail(c, h.logger, err, messages{invalid: "Invalid destination type", failed: "Failed to fetch destinations"})
	}
	return c.JSON(destinations)
}

// AdminList also returns soft-deleted rows when ?includeInactive=true.
func (h *DestinationHandler) AdminList(c *fiber.Ctx) error {
	destinations, err := h.destinationService.List(c.UserContext(), c.QueryBool("includeInactive", false))
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch destinations"})
	}
	return c.JSON(destinations)
}

func (h *DestinationHandler) Get(c *fiber.Ctx) error {
	destination, err := h.destinationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		m := destinationMessages
		m.failed = "Failed to fetch destination"
		return fail(c, h.logger, err, m)
	}
	return c.JSON(destination)
}

func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	m := destinationMessages
	m.failed = "Failed to create destination"

	var req models.CreateDestinationRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	destination, err := h.destinationService.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return c.JSON(destination)
}

func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	m := destinationMessages
	m.failed = "Failed to update destination"

	var req models.UpdateDestinationRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	destination, err := h.destinationService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return c.JSON(destination)
}

func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	if err := h.destinationService.Delete(c.UserContext(), c.Params("id")); err != nil {
		m := destinationMessages
		m.failed = "Failed to delete destination"
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Destination deleted successfully", nil)
}
