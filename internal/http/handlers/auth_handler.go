package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pixlumia/internal/log"
	"pixlumia/internal/services"
	"pixlumia/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// Login accepts any credentials and synthesizes the user record from the
// submitted form fields.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var form services.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(form.Email)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_email_format"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	form.Email = email

	u, err := h.Auth.Login(sid, form)
	if err != nil {
		applog.Error(c, "auth.login.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not sign in"})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(u)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.JSON(fiber.Map{"ok": true})
}

// Me serves the current user, 401 when nobody is signed in.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u := h.Auth.Current(sid)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	return c.JSON(u)
}

// UpdateMe shallow-merges the submitted fields into the current user; with
// nobody signed in the action quietly does nothing.
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var patch services.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	u, err := h.Auth.Update(sid, patch)
	if err != nil {
		applog.Error(c, "auth.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update profile"})
	}
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	return c.JSON(u)
}
