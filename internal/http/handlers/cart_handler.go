package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pixlumia/internal/log"
	"pixlumia/internal/services"
	"pixlumia/internal/validate"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func (h *CartHandler) view(c *fiber.Ctx, sid string) error {
	return c.JSON(fiber.Map{
		"items": h.Cart.Items(sid),
		"total": h.Cart.Total(sid),
		"count": h.Cart.Count(sid),
	})
}

// View serves the cart with its aggregate total and badge count.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return h.view(c, ensureSID(c))
}

type addRequest struct {
	ProductID string  `json:"productId"`
	Format    string  `json:"format"`
	Discount  float64 `json:"discount"`
}

// Add puts one unit of a catalog product into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	format, ok := validate.Format(req.Format)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid format"})
	}
	p, ok := h.Catalog.Get(sid, req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if _, err := h.Cart.Add(sid, p, format, validate.Discount(req.Discount)); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": p.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update cart"})
	}
	return h.view(c, sid)
}

type addCustomRequest struct {
	Image  string `json:"image"`
	Title  string `json:"title"`
	Format string `json:"format"`
}

// AddCustom synthesizes a one-off custom print and adds it to the cart.
// Custom lines never merge, even with identical formats.
func (h *CartHandler) AddCustom(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req addCustomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	format, ok := validate.Format(req.Format)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid format"})
	}
	p, err := h.Catalog.BuildCustomPrint(req.Image, req.Title)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing image"})
	}
	if _, err := h.Cart.Add(sid, p, format, 1); err != nil {
		applog.Error(c, "cart.addcustom.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update cart"})
	}
	return h.view(c, sid)
}

type quantityRequest struct {
	ProductID string `json:"productId"`
	Format    string `json:"format"`
	Delta     int    `json:"delta"`
}

// UpdateQuantity applies a delta to a line's quantity, floored at 1.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	format, ok := validate.Format(req.Format)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid format"})
	}
	if _, err := h.Cart.UpdateQuantity(sid, req.ProductID, format, validate.Delta(req.Delta)); err != nil {
		applog.Error(c, "cart.quantity.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update cart"})
	}
	return h.view(c, sid)
}

// Remove deletes every line matching the (productId, format) pair.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	format, ok := validate.Format(c.Query("format"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid format"})
	}
	if _, err := h.Cart.Remove(sid, id, format); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update cart"})
	}
	return h.view(c, sid)
}
