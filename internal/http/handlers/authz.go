package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pixlumia/internal/log"
	"pixlumia/internal/services"
)

// RequireUser gates a JSON route on a logged-in identity.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c)
		u := auth.Current(sid)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		c.Locals("user", u)
		c.Locals("uid", u.ID)
		return c.Next()
	}
}

// RequireAdmin gates the admin surface on an unlocked session.
func RequireAdmin(admin *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c)
		if !admin.Unlocked(sid) {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Redirect("/admin-lock")
		}
		return c.Next()
	}
}
