package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pixlumia/internal/log"
	"pixlumia/internal/recommend"
	"pixlumia/internal/services"
	"pixlumia/internal/validate"
)

type RecommendHandler struct {
	Client  *recommend.Client
	Catalog *services.CatalogService
}

type recommendRequest struct {
	Prompt string `json:"prompt"`
}

// Suggest asks the assistant for poster recommendations. The response is
// always 200: on any upstream failure the client returns its canned
// fallback, never an error.
func (h *RecommendHandler) Suggest(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	prompt, ok := validate.Prompt(req.Prompt)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing prompt"})
	}
	rec := h.Client.Recommend(prompt, h.Catalog.List(sid))
	applog.Info(c, "recommend.answer", map[string]any{"themes": rec.SuggestedThemes})
	return c.JSON(rec)
}
