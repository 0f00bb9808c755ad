package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/delivery"
	applog "pixlumia/internal/log"
	"pixlumia/internal/services"
)

type CheckoutHandler struct {
	Checkout  *services.CheckoutService
	Directory delivery.Directory
}

func (h *CheckoutHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.Checkout.State(ensureSID(c)))
}

// BeginDelivery moves the flow to the delivery step; it requires a
// logged-in identity and a non-empty cart.
func (h *CheckoutHandler) BeginDelivery(c *fiber.Ctx) error {
	sid := ensureSID(c)
	st, err := h.Checkout.BeginDelivery(sid)
	if err != nil {
		return checkoutError(c, "checkout.delivery", err)
	}
	return c.JSON(st)
}

type relayRequest struct {
	RelayID string `json:"relayId"`
}

// SelectRelay records the chosen pickup point from the directory.
func (h *CheckoutHandler) SelectRelay(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req relayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	point, ok := delivery.Find(h.Directory, req.RelayID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown relay point"})
	}
	st, err := h.Checkout.SelectRelay(sid, point)
	if err != nil {
		return checkoutError(c, "checkout.relay", err)
	}
	return c.JSON(st)
}

func (h *CheckoutHandler) BeginPayment(c *fiber.Ctx) error {
	sid := ensureSID(c)
	st, err := h.Checkout.BeginPayment(sid)
	if err != nil {
		return checkoutError(c, "checkout.payment", err)
	}
	return c.JSON(st)
}

// Pay completes the checkout: the order is created, the cart cleared and
// the flow reset.
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	sid := ensureSID(c)
	order, err := h.Checkout.Pay(sid)
	if err != nil {
		return checkoutError(c, "checkout.pay", err)
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "total": order.Total})
	return c.JSON(fiber.Map{"order": order})
}

// Reset returns the flow to the cart step.
func (h *CheckoutHandler) Reset(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Checkout.Reset(sid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not reset checkout"})
	}
	return c.JSON(h.Checkout.State(sid))
}

func checkoutError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrNoDelivery),
		errors.Is(err, services.ErrBadTransition):
		applog.Security(c, action+".refused", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "checkout failed"})
	}
}
