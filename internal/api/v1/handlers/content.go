package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/api/middleware"
	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/metrics"
	"github.com/coopfed/portal/internal/types"
)

// contentService is the uniform mutation contract every content type's
// service implements.
type contentService interface {
	Create(ctx context.Context, ident auth.Identity, fields map[string]interface{}) (uint, error)
	Update(ctx context.Context, ident auth.Identity, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, ident auth.Identity, id uint) error
}

// ContentHandler serves the admin mutations for one content type.
type ContentHandler struct {
	name string
	svc  contentService
}

// NewContentHandler creates a mutation handler for one content type. name
// labels the mutation metrics.
func NewContentHandler(name string, svc contentService) *ContentHandler {
	return &ContentHandler{name: name, svc: svc}
}

// Create handles POST requests for the content type.
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	fields, err := parseFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}

	id, err := h.svc.Create(c.Context(), middleware.IdentityFrom(c), fields)
	if err != nil {
		metrics.ContentMutations.WithLabelValues(h.name, "create", errorOutcome(err)).Inc()
		return respondError(c, err)
	}

	metrics.ContentMutations.WithLabelValues(h.name, "create", "ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(types.Success(&types.CreatedResponse{ID: id}))
}

// Update handles PATCH requests for the content type.
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}
	fields, err := parseFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}

	if err := h.svc.Update(c.Context(), middleware.IdentityFrom(c), id, fields); err != nil {
		metrics.ContentMutations.WithLabelValues(h.name, "update", errorOutcome(err)).Inc()
		return respondError(c, err)
	}

	metrics.ContentMutations.WithLabelValues(h.name, "update", "ok").Inc()
	return c.JSON(types.Success(nil))
}

// Delete handles DELETE requests for the content type.
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	if err := h.svc.Delete(c.Context(), middleware.IdentityFrom(c), id); err != nil {
		metrics.ContentMutations.WithLabelValues(h.name, "delete", errorOutcome(err)).Inc()
		return respondError(c, err)
	}

	metrics.ContentMutations.WithLabelValues(h.name, "delete", "ok").Inc()
	return c.JSON(types.Success(nil))
}
