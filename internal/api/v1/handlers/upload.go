package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/api/middleware"
	"github.com/coopfed/portal/internal/types"
	"github.com/coopfed/portal/internal/validation"
)

// GenerateUploadURL mints an upload URL for a new file.
func (h *Handlers) GenerateUploadURL(c *fiber.Ctx) error {
	if !middleware.IdentityFrom(c).IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrForbidden(ErrMsgAdminRequired))
	}
	url, err := h.Store.GenerateUploadURL(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.JSON(types.Success(&types.UploadURLResponse{UploadURL: url}))
}

// PutUpload receives the file bytes for a previously minted upload URL and
// returns the opaque storage reference.
func (h *Handlers) PutUpload(c *fiber.Ctx) error {
	if !middleware.IdentityFrom(c).IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrForbidden(ErrMsgAdminRequired))
	}

	key := c.Params("key")
	if err := validation.ValidateStorageRef(key); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidUploadKey))
	}
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgEmptyUpload))
	}

	if err := h.Store.Put(c.Context(), key, bytes.NewReader(body)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(types.Success(&types.UploadedResponse{Ref: key}))
}
