package services

import (
	"pixlumia/internal/domain"
	"pixlumia/internal/pricing"
	"pixlumia/internal/stores"
)

// CartService is the cart engine: it is the sole mutator of cart state and
// computes all line and aggregate pricing.
type CartService struct {
	Cart *stores.CartStore
}

func NewCartService(cart *stores.CartStore) *CartService {
	return &CartService{Cart: cart}
}

// Add puts one unit of a product/format into the cart. Non-custom products
// merge into an existing (id, format) line: quantity goes up by one and the
// line's unit price is overwritten with the newly computed one — last write
// wins, so a discounted re-add retroactively reprices the whole line.
// Custom products always append a fresh line, since each may carry a
// different uploaded image.
func (s *CartService) Add(sid string, p domain.Product, format domain.PosterFormat, discount float64) ([]domain.CartItem, error) {
	items := s.Cart.Items(sid)
	unit := pricing.UnitPrice(p, format, discount)

	merged := false
	if !p.IsCustom {
		for i := range items {
			if items[i].ID == p.ID && items[i].SelectedFormat == format {
				items[i].Quantity++
				items[i].FinalPrice = unit
				merged = true
				break
			}
		}
	}
	if !merged {
		items = append(items, domain.CartItem{
			Product:        p,
			Quantity:       1,
			SelectedFormat: format,
			FinalPrice:     unit,
		})
	}
	return items, s.Cart.Save(sid, items)
}

// UpdateQuantity applies a delta to the matching line, flooring at 1; to
// drop a line entirely use Remove. Unknown (id, format) pairs are a no-op.
func (s *CartService) UpdateQuantity(sid, id string, format domain.PosterFormat, delta int) ([]domain.CartItem, error) {
	items := s.Cart.Items(sid)
	changed := false
	for i := range items {
		if items[i].ID == id && items[i].SelectedFormat == format {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			changed = true
		}
	}
	if !changed {
		return items, nil
	}
	return items, s.Cart.Save(sid, items)
}

// Remove deletes every line matching (id, format). Custom products sharing
// an id go together; that only happens if id generation ever collides.
func (s *CartService) Remove(sid, id string, format domain.PosterFormat) ([]domain.CartItem, error) {
	items := s.Cart.Items(sid)
	kept := items[:0]
	for _, it := range items {
		if it.ID == id && it.SelectedFormat == format {
			continue
		}
		kept = append(kept, it)
	}
	return kept, s.Cart.Save(sid, kept)
}

func (s *CartService) Items(sid string) []domain.CartItem {
	return s.Cart.Items(sid)
}

// Total sums unit price times quantity over all lines. A zero FinalPrice on
// a line that is not genuinely free falls back to the format's base price,
// tolerating legacy or malformed persisted carts.
func (s *CartService) Total(sid string) float64 {
	total := 0.0
	for _, it := range s.Cart.Items(sid) {
		total += lineUnit(it) * float64(it.Quantity)
	}
	return total
}

// Count sums quantities across all lines, for the cart badge.
func (s *CartService) Count(sid string) int {
	n := 0
	for _, it := range s.Cart.Items(sid) {
		n += it.Quantity
	}
	return n
}

func (s *CartService) Clear(sid string) error {
	return s.Cart.Clear(sid)
}

func lineUnit(it domain.CartItem) float64 {
	if it.FinalPrice > 0 {
		return it.FinalPrice
	}
	if pricing.IsFree(it.Product) {
		return 0
	}
	return pricing.Details[it.SelectedFormat].Price
}
