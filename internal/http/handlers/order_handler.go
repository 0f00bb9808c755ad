package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
	Auth   *services.AuthService
}

// History lists the session's orders, most recent first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(fiber.Map{"orders": h.Orders.History(sid)})
}
