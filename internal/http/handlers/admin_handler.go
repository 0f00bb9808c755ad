package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixlumia/internal/domain"
	applog "pixlumia/internal/log"
	"pixlumia/internal/services"
	"pixlumia/internal/stores"
	"pixlumia/internal/validate"
)

type AdminHandler struct {
	Admin   *services.AdminService
	Catalog *services.CatalogService
	Studio  *stores.StudioStore
}

// GET /admin-lock
func (h *AdminHandler) LockForm(c *fiber.Ctx) error {
	return render(c, "admin_lock", fiber.Map{"Err": ""})
}

// POST /admin-lock
func (h *AdminHandler) Unlock(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if !h.Admin.Verify(c.FormValue("password")) {
		applog.Security(c, "admin.unlock.fail", map[string]any{"sid": sid})
		return c.Status(fiber.StatusUnauthorized).Render("admin_lock", fiber.Map{
			"Err":       "Mot de passe incorrect",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}
	if err := h.Admin.Unlock(sid); err != nil {
		applog.Error(c, "admin.unlock.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "admin.unlock", map[string]any{"sid": sid})
	return c.Redirect("/admin")
}

// POST /admin/logout
func (h *AdminHandler) Lock(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Admin.Lock(sid)
	applog.Audit(c, "admin.lock", map[string]any{"sid": sid})
	return c.Redirect("/")
}

// GET /admin
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return render(c, "admin_panel", fiber.Map{
		"Products":   h.Catalog.List(sid),
		"Background": h.Studio.Background(sid),
		"Categories": domain.ShopCategories,
	})
}

// POST /admin/products
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	sid := ensureSID(c)
	title, okTitle := validate.Title(c.FormValue("title"))
	image := c.FormValue("image")
	if !okTitle || image == "" {
		// validation rejection is silent: back to the panel, nothing added
		applog.Security(c, "admin.product.rejected", map[string]any{"title_ok": okTitle})
		return c.Redirect("/admin")
	}
	cat, _ := validate.Category(c.FormValue("category"))
	p, err := h.Catalog.Add(sid, services.ProductInput{
		Title:       title,
		Category:    cat,
		Price:       validate.Price(c.FormValue("price")),
		Image:       image,
		Description: c.FormValue("description"),
	})
	if err != nil {
		applog.Security(c, "admin.product.rejected", nil)
		return c.Redirect("/admin")
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product": p.ID, "title": p.Title})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	if err := h.Catalog.Delete(sid, id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.Redirect("/admin")
}

// POST /admin/reset — restore the seed catalog and drop the studio
// background.
func (h *AdminHandler) ResetCatalog(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Catalog.Reset(sid); err != nil {
		applog.Error(c, "admin.reset.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "admin.reset", nil)
	return c.Redirect("/admin")
}

// POST /admin/studio — set or clear the custom studio background.
func (h *AdminHandler) SetStudioBackground(c *fiber.Ctx) error {
	sid := ensureSID(c)
	bg := c.FormValue("background")
	if err := h.Studio.SetBackground(sid, bg); err != nil {
		applog.Error(c, "admin.studio.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "admin.studio.set", map[string]any{"cleared": bg == ""})
	return c.Redirect("/admin")
}
