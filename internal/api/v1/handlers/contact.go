package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/api/v1/services"
	"github.com/coopfed/portal/internal/types"
)

// SubmitContact accepts a contact-form submission and relays it by email.
func (h *Handlers) SubmitContact(c *fiber.Ctx) error {
	fields, err := parseFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))
	}

	id, err := h.Contact.Submit(c.Context(), fields)
	if errors.Is(err, services.ErrRelayFailed) {
		// The message was stored; the relay is what failed.
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgServer))
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(&types.CreatedResponse{ID: id}))
}

// ListContactMessages returns stored contact submissions for admins.
func (h *Handlers) ListContactMessages(c *fiber.Ctx) error {
	opts := listOptions(c)
	messages, err := h.Contact.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(messages, opts))
}
