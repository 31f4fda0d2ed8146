package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

var packageMessages = messages{
	invalid:  "Invalid package data",
	notFound: "Package not found",
}

type PackageHandler struct {
	packageService *service.PackageService
	logger         *zap.Logger
}

func NewPackageHandler(packageService *service.PackageService, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		logger:         logger,
	}
}

// List returns active packages, only featured ones with ?featured=true.
func (h *PackageHandler) List(c *fiber.Ctx) error {
	packages, err := h.packageService.List(c.UserContext(), models.PackageFilter{
		FeaturedOnly: c.QueryBool("featured", false),
	})
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch packages"})
	}
	return c.JSON(packages)
}

func (h *PackageHandler) ListByDestination(c *fiber.Ctx) error {
	packages, err := h.packageService.List(c.UserContext(), models.PackageFilter{
		DestinationID: c.Params("destinationId"),
	})
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch packages"})
	}
	return c.JSON(packages)
}

func (h *PackageHandler) Get(c *fiber.Ctx) error {
	pkg, err := h.packageService.Get(c.UserContext(), c.Params("id"), false)
	if err != nil {
		m := packageMessages
		m.failed = "Failed to fetch package"
		return fail(c, h.logger, err, m)
	}
	return c.JSON(pkg)
}

// QRCode renders the buy-now link as a PNG. ?size= sets the edge length.
func (h *PackageHandler) QRCode(c *fiber.Ctx) error {
	png, err := h.packageService.BuyNowQRCode(c.UserContext(), c.Params("id"), c.QueryInt("size", 0))
	if err != nil {
		m := packageMessages
		m.failed = "Failed to generate QR code"
		return fail(c, h.logger, err, m)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(png)
}

func (h *PackageHandler) AdminList(c *fiber.Ctx) error {
	packages, err := h.packageService.List(c.UserContext(), models.PackageFilter{
		IncludeInactive: c.QueryBool("includeInactive", false),
	})
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch packages"})
	}
	return c.JSON(packages)
}

func (h *PackageHandler) AdminGet(c *fiber.Ctx) error {
	pkg, err := h.packageService.Get(c.UserContext(), c.Params("id"), true)
	if err != nil {
		m := packageMessages
		m.failed = "Failed to fetch package"
		return fail(c, h.logger, err, m)
	}
	return c.JSON(pkg)
}

func (h *PackageHandler) Create(c *fiber.Ctx) error {
	m := packageMessages
	m.failed = "Failed to create package"

	var req models.CreatePackageRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	pkg, err := h.packageService.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return c.JSON(pkg)
}

func (h *PackageHandler) Update(c *fiber.Ctx) error {
	m := packageMessages
	m.failed = "Failed to update package"

	var req models.UpdatePackageRequest
	if err := decode(c, &req); err != nil {
		return fail(c, h.logger, err, m)
	}

	pkg, err := h.packageService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return fail(c, h.logger, err, m)
	}
	return c.JSON(pkg)
}

func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	if err := h.packageService.Delete(c.UserContext(), c.Params("id")); err != nil {
		m := packageMessages
		m.failed = "Failed to delete package"
		return fail(c, h.logger, err, m)
	}
	return acknowledge(c, "Package deleted successfully", nil)
}
