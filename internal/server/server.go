package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/ttravel-backend/internal/config"
	"github.com/sefazor/ttravel-backend/internal/handler"
	"github.com/sefazor/ttravel-backend/internal/middleware"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Auth        *service.AuthService
	User        *service.UserService
	Destination *service.DestinationService
	Package     *service.PackageService
	Content     *service.ContentService
	Contact     *service.ContactService
	Newsletter  *service.NewsletterService
	Gallery     *service.GalleryService
	Stats       *service.StatsService
}

// New builds the Fiber app with every route registered.
func New(cfg *config.Config, svc Services, log *zap.Logger) *fiber.App {
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}

	app := fiber.New(fiber.Config{
		AppName:               "ttravel-api",
		BodyLimit:             bodyLimit * 1024 * 1024,
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${status} ${method} ${path} ${latency}\n",
		Output: zap.NewStdLog(log.Named("http")).Writer(),
	}))

	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: origins != "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(svc.Auth, svc.User, handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	}, log)
	destinationHandler := handler.NewDestinationHandler(svc.Destination, log)
	packageHandler := handler.NewPackageHandler(svc.Package, log)
	contentHandler := handler.NewContentHandler(svc.Content, log)
	contactHandler := handler.NewContactHandler(svc.Contact, log)
	newsletterHandler := handler.NewNewsletterHandler(svc.Newsletter, log)
	galleryHandler := handler.NewGalleryHandler(svc.Gallery, log)
	statsHandler := handler.NewStatsHandler(svc.Stats, log)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/check", authHandler.Check)

	api.Get("/destinations", destinationHandler.List)
	api.Get("/destinations/:type", destinationHandler.ListByType)
	api.Get("/content", contentHandler.Map)
	api.Post("/contact", contactHandler.Submit)
	api.Post("/newsletter", newsletterHandler.Subscribe)
	api.Post("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	api.Get("/packages", packageHandler.List)
	api.Get("/packages/destination/:destinationId", packageHandler.ListByDestination)
	api.Get("/packages/:id", packageHandler.Get)
	api.Get("/packages/:id/qrcode", packageHandler.QRCode)

	api.Get("/gallery", galleryHandler.List)
	api.Post("/gallery", galleryHandler.Submit)

	// Protected routes
	admin := api.Group("/admin", middleware.AuthMiddleware(svc.Auth, cfg.Session.CookieName, log))
	{
		admin.Get("/destinations", destinationHandler.AdminList)
		admin.Get("/destinations/:id", destinationHandler.Get)
		admin.Post("/destinations", destinationHandler.Create)
		admin.Put("/destinations/:id", destinationHandler.Update)
		admin.Delete("/destinations/:id", destinationHandler.Delete)

		admin.Get("/content", contentHandler.List)
		admin.Put("/content", contentHandler.Update)

		admin.Get("/contact-submissions", contactHandler.List)
		admin.Put("/contact-submissions/:id/status", contactHandler.UpdateStatus)
		admin.Put("/contact-submissions/:id/mark-responded", contactHandler.MarkResponded)

		admin.Get("/newsletter-subscriptions", newsletterHandler.List)
		admin.Delete("/newsletter-subscriptions/:id", newsletterHandler.Delete)

		admin.Put("/change-password", authHandler.ChangePassword)
		admin.Get("/stats", statsHandler.Get)

		admin.Get("/packages", packageHandler.AdminList)
		admin.Get("/packages/:id", packageHandler.AdminGet)
		admin.Post("/packages", packageHandler.Create)
		admin.Put("/packages/:id", packageHandler.Update)
		admin.Delete("/packages/:id", packageHandler.Delete)

		admin.Get("/gallery", galleryHandler.AdminList)
		admin.Put("/gallery/:id/approve", galleryHandler.Approve)
		admin.Delete("/gallery/:id", galleryHandler.Delete)
	}

	return app
}

// errorHandler turns errors that escape a handler into the JSON envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(models.ErrorResponse(fe.Message))
		}

		log.Error("unhandled error", zap.Error(err), zap.String("method", c.Method()), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
}
