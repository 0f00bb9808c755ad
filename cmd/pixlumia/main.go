package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"pixlumia/internal/config"
	"pixlumia/internal/http/handlers"
	applog "pixlumia/internal/log"
	"pixlumia/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := store.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	kv := store.NewSQLite(db)
	deps := handlers.NewDeps(kv, cfg)

	// Templates (admin surface only; the storefront is a JSON API)
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard; custom uploads arrive as data URIs
	app.Server().MaxRequestBodySize = 4 << 20 // 4 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))
	// CSRF protects the admin form surface; the JSON API is cookie-scoped
	// state only, no forms.
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/admin")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- JSON API ----------
	api := app.Group("/api/v1")

	api.Get("/catalog", deps.Catalog.List)
	api.Get("/catalog/:id", deps.Catalog.Detail)
	api.Get("/formats", deps.Catalog.Formats)

	api.Get("/cart", deps.Cart.View)
	api.Post("/cart", deps.Cart.Add)
	api.Post("/cart/custom", deps.Cart.AddCustom)
	api.Patch("/cart/items", deps.Cart.UpdateQuantity)
	api.Delete("/cart/items", deps.Cart.Remove)

	api.Get("/checkout", deps.Checkout.State)
	api.Post("/checkout/delivery", deps.Checkout.BeginDelivery)
	api.Post("/checkout/relay", deps.Checkout.SelectRelay)
	api.Post("/checkout/payment", deps.Checkout.BeginPayment)
	api.Post("/checkout/pay", deps.Checkout.Pay)
	api.Post("/checkout/reset", deps.Checkout.Reset)

	api.Post("/auth/login", deps.Auth.Login)
	api.Post("/auth/logout", deps.Auth.Logout)
	api.Get("/me", deps.Auth.Me)
	api.Patch("/me", deps.Auth.UpdateMe)

	api.Get("/orders", handlers.RequireUser(deps.AuthSvc), deps.Orders.History)

	api.Get("/delivery/points", deps.Delivery.Points)
	api.Get("/studio/scales", deps.Studio.Scales)
	api.Get("/studio/background", deps.Studio.Background)

	api.Post("/recommendations", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), deps.Recommend.Suggest)

	// ---------- Admin surface (server-rendered, secret-gated) ----------
	app.Get("/admin-lock", deps.Admin.LockForm)
	app.Post("/admin-lock", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.admin.unlock.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("admin_lock", fiber.Map{"Err": "Trop de tentatives. Réessayez plus tard."})
		},
	}), deps.Admin.Unlock)

	admin := app.Group("/admin", handlers.RequireAdmin(deps.AdminSvc))
	admin.Get("/", deps.Admin.Panel)
	admin.Post("/products", deps.Admin.AddProduct)
	admin.Post("/products/:id/delete", deps.Admin.DeleteProduct)
	admin.Post("/reset", deps.Admin.ResetCatalog)
	admin.Post("/studio", deps.Admin.SetStudioBackground)
	admin.Post("/logout", deps.Admin.Lock)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
