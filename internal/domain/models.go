package domain

type Category string

const (
	CategoryFilms  Category = "Films"
	CategorySeries Category = "Séries"
	CategoryGames  Category = "Jeux Vidéo"
	CategoryAnime  Category = "Anime"
	CategoryPerso  Category = "Perso"
)

// ShopCategories are the categories offered as storefront filters; Perso is
// reserved for one-off custom prints.
var ShopCategories = []Category{CategoryFilms, CategorySeries, CategoryGames, CategoryAnime}

func (c Category) Valid() bool {
	switch c {
	case CategoryFilms, CategorySeries, CategoryGames, CategoryAnime, CategoryPerso:
		return true
	}
	return false
}

type PosterFormat string

const (
	FormatA4    PosterFormat = "A4"
	FormatA3    PosterFormat = "A3"
	Format40x60 PosterFormat = "40x60cm"
	Format50x70 PosterFormat = "50x70cm"
	Format60x90 PosterFormat = "60x90cm"
)

func (f PosterFormat) Valid() bool {
	switch f {
	case FormatA4, FormatA3, Format40x60, Format50x70, Format60x90:
		return true
	}
	return false
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"` // surcharge added on top of the format price
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Featured    bool     `json:"featured,omitempty"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// CartItem is a product snapshot extended with the chosen format, quantity
// and the unit price locked in at add time.
type CartItem struct {
	Product
	Quantity       int          `json:"quantity"`
	SelectedFormat PosterFormat `json:"selectedFormat"`
	FinalPrice     float64      `json:"finalPrice"`
}

type RelayPoint struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Distance string `json:"distance"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "En attente"
	StatusPreparing OrderStatus = "En préparation"
	StatusShipped   OrderStatus = "Expédié"
	StatusDelivered OrderStatus = "Livré"
)

type DeliveryType string

const (
	DeliveryRelay DeliveryType = "Mondial Relay"
	// DeliveryHome exists in the data model but no code path produces it.
	DeliveryHome DeliveryType = "Domicile"
)

// Order is an immutable snapshot of a completed checkout. Items is a copy
// of the cart at submission time; later cart mutations never touch it.
type Order struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Items        []CartItem   `json:"items"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
	DeliveryType DeliveryType `json:"deliveryType"`
	RelayPoint   *RelayPoint  `json:"relayPoint,omitempty"`
	// DeliveryAddress carries the free-text form of the delivery info for
	// the Domicile delivery type.
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
}

type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepDelivery CheckoutStep = "delivery"
	StepPayment  CheckoutStep = "payment"
)

// CheckoutState tracks the per-session checkout flow position and the
// relay point selected during the delivery step.
type CheckoutState struct {
	Step  CheckoutStep `json:"step"`
	Relay *RelayPoint  `json:"relay,omitempty"`
}
