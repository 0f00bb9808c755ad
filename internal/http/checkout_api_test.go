package handlers_test

import (
	"net/http"
	"testing"

	"pixlumia/internal/domain"
)

func login(t *testing.T, s *session) {
	t.Helper()
	resp := s.do("POST", "/api/v1/auth/login", map[string]any{"email": "marie@example.fr", "password": "x"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d", resp.StatusCode)
	}
}

func TestCheckoutGates(t *testing.T) {
	app := newApp(t)
	s := newSession(t, app)

	// anonymous with a full cart -> 401
	s.do("POST", "/api/v1/cart", map[string]any{"productId": "1", "format": "A4"})
	resp := s.do("POST", "/api/v1/checkout/delivery", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous checkout: status %d", resp.StatusCode)
	}

	// logged in with an empty cart -> 400
	empty := newSession(t, app)
	login(t, empty)
	resp = empty.do("POST", "/api/v1/checkout/delivery", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty-cart checkout: status %d", resp.StatusCode)
	}

	// relay selection before the delivery step -> 400
	resp = empty.do("POST", "/api/v1/checkout/relay", map[string]any{"relayId": "1"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("early relay: status %d", resp.StatusCode)
	}
}

func TestCheckoutFullTunnel(t *testing.T) {
	app := newApp(t)
	s := newSession(t, app)
	login(t, s)
	s.do("POST", "/api/v1/cart", map[string]any{"productId": "1", "format": "A4"})

	var st domain.CheckoutState
	resp := s.do("POST", "/api/v1/checkout/delivery", nil)
	decode(t, resp, &st)
	if st.Step != domain.StepDelivery {
		t.Fatalf("want delivery step, got %s", st.Step)
	}

	resp = s.do("POST", "/api/v1/checkout/relay", map[string]any{"relayId": "2"})
	decode(t, resp, &st)
	if st.Relay == nil || st.Relay.ID != "2" {
		t.Fatalf("relay not recorded: %+v", st)
	}

	resp = s.do("POST", "/api/v1/checkout/relay", map[string]any{"relayId": "99"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown relay: status %d", resp.StatusCode)
	}

	resp = s.do("POST", "/api/v1/checkout/payment", nil)
	decode(t, resp, &st)
	if st.Step != domain.StepPayment {
		t.Fatalf("want payment step, got %s", st.Step)
	}

	var placed struct {
		Order domain.Order `json:"order"`
	}
	resp = s.do("POST", "/api/v1/checkout/pay", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pay: status %d", resp.StatusCode)
	}
	decode(t, resp, &placed)
	if placed.Order.Status != domain.StatusPending {
		t.Fatalf("want %q, got %q", domain.StatusPending, placed.Order.Status)
	}
	if placed.Order.RelayPoint == nil || placed.Order.RelayPoint.ID != "2" {
		t.Fatalf("order relay wrong: %+v", placed.Order.RelayPoint)
	}

	// cart cleared, flow reset, order in history
	var cv cartView
	resp = s.do("GET", "/api/v1/cart", nil)
	decode(t, resp, &cv)
	if cv.Count != 0 {
		t.Fatalf("cart not cleared: %+v", cv)
	}
	resp = s.do("GET", "/api/v1/checkout", nil)
	decode(t, resp, &st)
	if st.Step != domain.StepCart {
		t.Fatalf("flow not reset: %+v", st)
	}

	var hist struct {
		Orders []domain.Order `json:"orders"`
	}
	resp = s.do("GET", "/api/v1/orders", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: status %d", resp.StatusCode)
	}
	decode(t, resp, &hist)
	if len(hist.Orders) != 1 || hist.Orders[0].ID != placed.Order.ID {
		t.Fatalf("bad history: %+v", hist.Orders)
	}
}

func TestCheckoutResetKeepsCart(t *testing.T) {
	app := newApp(t)
	s := newSession(t, app)
	login(t, s)
	s.do("POST", "/api/v1/cart", map[string]any{"productId": "1", "format": "A4"})
	s.do("POST", "/api/v1/checkout/delivery", nil)

	var st domain.CheckoutState
	resp := s.do("POST", "/api/v1/checkout/reset", nil)
	decode(t, resp, &st)
	if st.Step != domain.StepCart {
		t.Fatalf("want cart step after reset, got %s", st.Step)
	}

	var cv cartView
	resp = s.do("GET", "/api/v1/cart", nil)
	decode(t, resp, &cv)
	if cv.Count != 1 {
		t.Fatalf("reset must keep the cart: %+v", cv)
	}
}

func TestOrderHistoryRequiresLogin(t *testing.T) {
	app := newApp(t)
	s := newSession(t, app)
	resp := s.do("GET", "/api/v1/orders", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous history: status %d", resp.StatusCode)
	}
}

func TestDeliveryPointsServed(t *testing.T) {
	app := newApp(t)
	s := newSession(t, app)

	var out struct {
		Points []domain.RelayPoint `json:"points"`
	}
	resp := s.do("GET", "/api/v1/delivery/points?zip=75001", nil)
	decode(t, resp, &out)
	if len(out.Points) != 3 {
		t.Fatalf("want 3 points, got %d", len(out.Points))
	}
}
