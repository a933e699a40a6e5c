package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/api/v1/services"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/types"
	"github.com/coopfed/portal/internal/validation"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Hero         *services.Hero
	OurRole      *services.OurRole
	Gallery      *services.Gallery
	Executives   *services.Executive
	Testimonials *services.Testimonial
	News         *services.News
	Contact      *services.Contact
	Store        storage.Store
}

// New creates the handler bundle.
func New(hero *services.Hero, ourRole *services.OurRole, gallery *services.Gallery,
	executives *services.Executive, testimonials *services.Testimonial,
	news *services.News, contact *services.Contact, store storage.Store) *Handlers {
	return &Handlers{
		Hero:         hero,
		OurRole:      ourRole,
		Gallery:      gallery,
		Executives:   executives,
		Testimonials: testimonials,
		News:         news,
		Contact:      contact,
		Store:        store,
	}
}

// parseFields decodes the request body into a field map for schema-driven
// validation.
func parseFields(c *fiber.Ctx) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if err := c.BodyParser(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseID parses the :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New(ErrMsgInvalidID)
	}
	return uint(id), nil
}

// listOptions reads pagination from the query string.
func listOptions(c *fiber.Ctx) *models.ListOptions {
	return &models.ListOptions{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
}

// listResponse wraps rows in the standard list envelope.
func listResponse[T any](rows []T, opts *models.ListOptions) types.ListResponse[T] {
	return types.ListResponse[T]{
		Rows: rows,
		Pagination: types.PaginationResponse{
			Count:  len(rows),
			Limit:  opts.Limit,
			Offset: opts.Offset,
		},
	}
}

// respondError translates a service error into the matching status code
// and response envelope.
func respondError(c *fiber.Ctx, err error) error {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(verr.Error()))
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(types.ErrForbidden(ErrMsgAdminRequired))
	case errors.Is(err, repos.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgNotFound))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
}

// errorOutcome is the metrics label for a failed mutation.
func errorOutcome(err error) string {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, services.ErrForbidden):
		return "forbidden"
	case errors.Is(err, repos.ErrNotFound):
		return "not_found"
	case errors.Is(err, services.ErrStorageRelease):
		return "release_failed"
	default:
		return "error"
	}
}
