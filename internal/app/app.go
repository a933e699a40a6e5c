// Package app assembles the fiber application from its parts.
package app

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coopfed/portal/internal/api/middleware"
	"github.com/coopfed/portal/internal/api/v1/handlers"
	v1 "github.com/coopfed/portal/internal/api/v1/routes"
	"github.com/coopfed/portal/internal/api/v1/services"
	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/mail"
	"github.com/coopfed/portal/internal/storage"
)

// Options holds the collaborators the app is assembled from.
type Options struct {
	DB       *gorm.DB
	Store    storage.Store
	Mailer   mail.Mailer
	Verifier *auth.Verifier
}

// New builds the fiber application: request logging, the access guard, and
// the public and admin route surfaces.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())
	app.Use(middleware.NewGuard(opts.Verifier).Handler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	hero := services.NewHeroService(repos.NewContentRepository[models.HeroText](opts.DB), opts.Store)
	ourRole := services.NewOurRoleService(repos.NewContentRepository[models.OurRole](opts.DB), opts.Store)
	gallery := services.NewGalleryService(repos.NewContentRepository[models.GalleryItem](opts.DB), opts.Store)
	executives := services.NewExecutiveService(repos.NewContentRepository[models.Executive](opts.DB), opts.Store)
	testimonials := services.NewTestimonialService(repos.NewContentRepository[models.Testimonial](opts.DB), opts.Store)
	news := services.NewNewsService(repos.NewContentRepository[models.NewsPost](opts.DB), opts.Store)
	contact := services.NewContactService(repos.NewContentRepository[models.ContactMessage](opts.DB), opts.Mailer)

	h := handlers.New(hero, ourRole, gallery, executives, testimonials, news, contact, opts.Store)
	v1.Register(app, h)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
