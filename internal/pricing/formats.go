package pricing

import "pixlumia/internal/domain"

// FreeTestID marks the catalog product used to exercise the full order
// tunnel without charging anything.
const FreeTestID = "test-0"

type FormatDetail struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Details maps each print format to its label and base price. The set is
// fixed and prices are strictly increasing.
var Details = map[domain.PosterFormat]FormatDetail{
	domain.FormatA4:    {Label: "A4 (21 × 29,7 cm)", Price: 4.90},
	domain.FormatA3:    {Label: "A3 (29,7 × 42 cm)", Price: 5.90},
	domain.Format40x60: {Label: "40 × 60 cm", Price: 9.90},
	domain.Format50x70: {Label: "50 × 70 cm", Price: 12.90},
	domain.Format60x90: {Label: "60 × 90 cm", Price: 19.90},
}

// FormatOrder lists the formats smallest first, for stable rendering.
var FormatOrder = []domain.PosterFormat{
	domain.FormatA4,
	domain.FormatA3,
	domain.Format40x60,
	domain.Format50x70,
	domain.Format60x90,
}

// DisplayScales maps each format to the display width used by the studio
// preview when compositing a poster onto a room photo. Rendering itself is
// a client concern; the table is served read-only.
var DisplayScales = map[domain.PosterFormat]string{
	domain.FormatA4:    "16.1%",
	domain.FormatA3:    "22.7%",
	domain.Format40x60: "30.6%",
	domain.Format50x70: "38.3%",
	domain.Format60x90: "46%",
}

// IsFree reports whether a product is always priced at zero: the free test
// product, and custom uploads with no surcharge.
func IsFree(p domain.Product) bool {
	return p.ID == FreeTestID || (p.IsCustom && p.Price == 0)
}

// UnitPrice computes the per-unit price of a product in a given format.
// Free products cost zero regardless of format; otherwise the format base
// price plus the product surcharge, scaled by the discount multiplier.
func UnitPrice(p domain.Product, format domain.PosterFormat, discount float64) float64 {
	if discount <= 0 {
		discount = 1
	}
	if IsFree(p) {
		return 0
	}
	return (Details[format].Price + p.Price) * discount
}
