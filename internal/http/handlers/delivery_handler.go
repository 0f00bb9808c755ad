package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/delivery"
)

type DeliveryHandler struct {
	Directory delivery.Directory
}

// Points lists pickup points. The ?zip= parameter is accepted for the UI
// but the mocked directory serves the same list regardless.
func (h *DeliveryHandler) Points(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"points": h.Directory.Search(c.Query("zip"))})
}
