package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/pricing"
	"pixlumia/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// List serves the filtered catalog: ?category= exact or "Tous", ?q=
// case-insensitive substring.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	products := h.Catalog.Filter(sid, c.Query("category"), c.Query("q"))
	return c.JSON(fiber.Map{"products": products})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	p, ok := h.Catalog.Get(sid, c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

// Formats serves the static pricing table, smallest format first.
func (h *CatalogHandler) Formats(c *fiber.Ctx) error {
	type row struct {
		ID    string  `json:"id"`
		Label string  `json:"label"`
		Price float64 `json:"price"`
	}
	out := make([]row, 0, len(pricing.FormatOrder))
	for _, f := range pricing.FormatOrder {
		d := pricing.Details[f]
		out = append(out, row{ID: string(f), Label: d.Label, Price: d.Price})
	}
	return c.JSON(fiber.Map{"formats": out})
}
