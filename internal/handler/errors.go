package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

// messages are the client-facing texts for one endpoint's failure modes.
type messages struct {
	invalid  string
	notFound string
	failed   string
}

// fail writes the response for err. Anything that is not a client error is
// logged and reported with the generic failure message.
func fail(c *fiber.Ctx, logger *zap.Logger, err error, m messages) error {
	var verrs utils.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(m.invalid, verrs))
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(m.notFound))
	case errors.Is(err, service.ErrUnauthenticated):
		return unauthorized(c)
	}

	logger.Error(m.failed, zap.Error(err), zap.String("method", c.Method()), zap.String("path", c.Path()))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(m.failed))
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Authentication required",
	})
}

// decode parses the request body strictly into dst.
func decode(c *fiber.Ctx, dst interface{}) error {
	return utils.DecodeJSON(c.Body(), dst)
}

func acknowledge(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(body)
}
