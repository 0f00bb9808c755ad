package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"pixlumia/internal/config"
	"pixlumia/internal/http/handlers"
	"pixlumia/internal/store"
)

// newApp wires the full route table over an in-memory store, mirroring the
// production wiring minus rate limiting.
func newApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{
		AdminSecret:   "PIXLUMIA2025",
		GeminiBaseURL: "http://127.0.0.1:1", // unreachable: recommendations fall back
		GeminiModel:   "test-model",
	}
	deps := handlers.NewDeps(store.NewMemory(), cfg)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Next: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/admin")
		},
	}))

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
	api.Post("/recommendations", deps.Recommend.Suggest)

	app.Get("/admin-lock", deps.Admin.LockForm)
	app.Post("/admin-lock", deps.Admin.Unlock)
	admin := app.Group("/admin", handlers.RequireAdmin(deps.AdminSvc))
	admin.Get("/", deps.Admin.Panel)
	admin.Post("/products", deps.Admin.AddProduct)
	admin.Post("/products/:id/delete", deps.Admin.DeleteProduct)
	admin.Post("/reset", deps.Admin.ResetCatalog)
	admin.Post("/studio", deps.Admin.SetStudioBackground)
	admin.Post("/logout", deps.Admin.Lock)

	return app
}

// session carries cookies across requests against one app, like a browser.
type session struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newSession(t *testing.T, app *fiber.App) *session {
	t.Helper()
	return &session{t: t, app: app, cookies: map[string]string{}}
}

func (s *session) do(method, target string, body any) *http.Response {
	s.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			s.t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, val := range s.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: val})
	}
	resp, err := s.app.Test(req)
	if err != nil {
		s.t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		s.cookies[c.Name] = c.Value
	}
	return resp
}

func (s *session) doForm(method, target string, form map[string]string) *http.Response {
	s.t.Helper()
	vals := url.Values{}
	for k, v := range form {
		vals.Set(k, v)
	}
	// double-submit token from the cookie the csrf middleware minted
	if tok, ok := s.cookies["csrf_"]; ok {
		vals.Set("csrf", tok)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for name, val := range s.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: val})
	}
	resp, err := s.app.Test(req)
	if err != nil {
		s.t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		s.cookies[c.Name] = c.Value
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}
