// Package routes wires the HTTP surface to its handlers.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coopfed/portal/internal/api/v1/handlers"
)

// Register registers the public API, the guarded admin API and the
// metrics endpoint. The access guard is installed app-wide by the caller,
// ahead of these routes.
func Register(app *fiber.App, h *handlers.Handlers) {
	api := app.Group("/api/v1")
	api.Get("/hero", h.GetHero)
	api.Get("/our-role", h.GetOurRole)
	api.Get("/gallery", h.ListGallery)
	api.Get("/executives", h.ListExecutives)
	api.Get("/testimonials", h.ListTestimonials)
	api.Get("/news", h.ListNews)
	api.Get("/news/:id", h.GetNews)
	api.Get("/files/:ref", h.ServeFile)
	api.Post("/contact", h.SubmitContact)

	// Admin mutations live under the guarded /admin prefix.
	admin := app.Group("/admin/api/v1")
	registerContent(admin, "hero", handlers.NewContentHandler("hero", h.Hero))
	registerContent(admin, "our-role", handlers.NewContentHandler("our_role", h.OurRole))
	registerContent(admin, "gallery", handlers.NewContentHandler("gallery", h.Gallery))
	registerContent(admin, "executives", handlers.NewContentHandler("executive", h.Executives))
	registerContent(admin, "testimonials", handlers.NewContentHandler("testimonial", h.Testimonials))
	registerContent(admin, "news", handlers.NewContentHandler("news", h.News))

	admin.Get("/contact-messages", h.ListContactMessages)
	admin.Post("/uploads", h.GenerateUploadURL)
	admin.Put("/uploads/:key", h.PutUpload)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// registerContent registers the uniform mutation routes for one content
// type.
func registerContent(router fiber.Router, path string, h *handlers.ContentHandler) {
	group := router.Group("/" + path)
	group.Post("/", h.Create)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
