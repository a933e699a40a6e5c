package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/types"
)

// GetHero returns the current landing-page hero copy.
func (h *Handlers) GetHero(c *fiber.Ctx) error {
	hero, err := h.Hero.Current(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.Success(hero))
}

// GetOurRole returns the current "our role" copy.
func (h *Handlers) GetOurRole(c *fiber.Ctx) error {
	role, err := h.OurRole.Current(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.Success(role))
}

// ListGallery returns gallery items, newest first.
func (h *Handlers) ListGallery(c *fiber.Ctx) error {
	opts := listOptions(c)
	items, err := h.Gallery.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(items, opts))
}

// ListExecutives returns executive profiles, newest first.
func (h *Handlers) ListExecutives(c *fiber.Ctx) error {
	opts := listOptions(c)
	excos, err := h.Executives.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(excos, opts))
}

// ListTestimonials returns testimonials, newest first.
func (h *Handlers) ListTestimonials(c *fiber.Ctx) error {
	opts := listOptions(c)
	testimonials, err := h.Testimonials.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(testimonials, opts))
}

// ListNews returns news posts, newest first.
func (h *Handlers) ListNews(c *fiber.Ctx) error {
	opts := listOptions(c)
	posts, err := h.News.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(posts, opts))
}

// GetNews returns one news post.
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}
	post, err := h.News.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.Success(post))
}

// ServeFile streams a stored file by its reference.
func (h *Handlers) ServeFile(c *fiber.Ctx) error {
	ref := c.Params("ref")
	if _, ok := h.Store.URL(c.Context(), ref); !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgFileNotFound))
	}
	r, err := h.Store.Open(c.Context(), ref)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgFileNotFound))
	}
	return c.SendStream(r)
}
