package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pixlumia/internal/domain"
	"pixlumia/internal/payment"
	"pixlumia/internal/stores"
)

// OrderService freezes a cart snapshot plus a delivery selection into an
// immutable order record and maintains the per-session history.
type OrderService struct {
	Cart   *CartService
	Orders *stores.OrderStore
	Pay    payment.Gateway
}

func NewOrderService(cart *CartService, orders *stores.OrderStore, pay payment.Gateway) *OrderService {
	return &OrderService{Cart: cart, Orders: orders, Pay: pay}
}

// Place charges the cart total and records the order. It refuses without a
// relay selection and with an empty cart; on success the order sits at
// index 0 of history with status "En attente" and the cart is cleared.
func (s *OrderService) Place(sid string, relay *domain.RelayPoint) (domain.Order, error) {
	if relay == nil {
		return domain.Order{}, ErrNoDelivery
	}
	items := s.Cart.Items(sid)
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	total := s.Cart.Total(sid)

	if err := s.Pay.Charge(total); err != nil {
		return domain.Order{}, err
	}

	// Snapshot by value: the order must never see later cart mutations.
	frozen := make([]domain.CartItem, len(items))
	copy(frozen, items)
	rp := *relay

	order := domain.Order{
		ID:           newOrderID(),
		Date:         time.Now().Format("02/01/2006"),
		Items:        frozen,
		Total:        total,
		Status:       domain.StatusPending,
		DeliveryType: domain.DeliveryRelay,
		RelayPoint:   &rp,
	}

	history := append([]domain.Order{order}, s.Orders.List(sid)...)
	if err := s.Orders.Save(sid, history); err != nil {
		return domain.Order{}, err
	}
	_ = s.Cart.Clear(sid)
	return order, nil
}

func (s *OrderService) History(sid string) []domain.Order {
	return s.Orders.List(sid)
}

// newOrderID produces a short human-readable token, e.g. PX-3F2A91C0D.
func newOrderID() string {
	tok := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PX-" + strings.ToUpper(tok[:9])
}
