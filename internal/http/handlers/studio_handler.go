package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/pricing"
	"pixlumia/internal/stores"
)

type StudioHandler struct {
	Studio *stores.StudioStore
}

// Scales serves the format → display-width table driving the studio
// preview overlay.
func (h *StudioHandler) Scales(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"scales": pricing.DisplayScales})
}

// Background serves the custom studio background, empty when unset.
func (h *StudioHandler) Background(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(fiber.Map{"background": h.Studio.Background(sid)})
}
