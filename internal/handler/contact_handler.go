package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid form data", failed: "Failed to submit contact form"}

	var req models.CreateContactRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	submission, err := h.contactService.Submit(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Message sent successfully", fiber.Map{"id": submission.ID})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	submissions, err := h.contactService.List(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch contact submissions"})
	}
	return c.JSON(submissions)
}

func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	m := messages{invalid: "Invalid status data", notFound: "Submission not found", failed: "Failed to update submission status"}

	var req models.UpdateContactStatusRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	submission, err := h.contactService.SetStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return c.JSON(submission)
}

func (h *ContactHandler) MarkResponded(c *fiber.Ctx) error {
	submission, err := h.contactService.MarkResponded(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.logger, err, messages{notFound: "Submission not found", failed: "Failed to update submission status"})
	}
	return acknowledge(c, "Submission marked as responded", fiber.Map{"submission": submission})
}
