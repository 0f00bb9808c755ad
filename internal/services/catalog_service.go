package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pixlumia/internal/domain"
	"pixlumia/internal/stores"
)

// CatalogService owns product lifetime: seeding, admin additions and
// deletions, and the storefront filters.
type CatalogService struct {
	Catalog *stores.CatalogStore
	Studio  *stores.StudioStore
}

func NewCatalogService(catalog *stores.CatalogStore, studio *stores.StudioStore) *CatalogService {
	return &CatalogService{Catalog: catalog, Studio: studio}
}

type ProductInput struct {
	Title       string
	Category    domain.Category
	Price       float64
	Image       string
	Description string
}

func (s *CatalogService) List(sid string) []domain.Product {
	return s.Catalog.Products(sid)
}

func (s *CatalogService) Get(sid, id string) (domain.Product, bool) {
	for _, p := range s.Catalog.Products(sid) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter applies the category filter (exact match, "Tous" or empty means
// all) then a case-insensitive substring search over title, category and
// description.
func (s *CatalogService) Filter(sid, category, query string) []domain.Product {
	products := s.Catalog.Products(sid)
	out := make([]domain.Product, 0, len(products))

	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range products {
		if category != "" && category != "Tous" && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(string(p.Category)), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Add prepends an admin-submitted product. Title and image are required;
// anything else gets a default. The identifier is time-derived, matching
// the submission instant.
func (s *CatalogService) Add(sid string, in ProductInput) (domain.Product, error) {
	if strings.TrimSpace(in.Title) == "" || in.Image == "" {
		return domain.Product{}, ErrRejected
	}
	cat := in.Category
	if !cat.Valid() {
		cat = domain.CategoryFilms
	}
	desc := in.Description
	if desc == "" {
		desc = "Affiche premium."
	}
	price := in.Price
	if price < 0 {
		price = 0
	}

	p := domain.Product{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:       strings.TrimSpace(in.Title),
		Category:    cat,
		Price:       price,
		Image:       in.Image,
		Description: desc,
		Rating:      5.0,
	}

	products := append([]domain.Product{p}, s.Catalog.Products(sid)...)
	return p, s.Catalog.Save(sid, products)
}

// Delete removes every product with the given id.
func (s *CatalogService) Delete(sid, id string) error {
	products := s.Catalog.Products(sid)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.Catalog.Save(sid, kept)
}

// Reset restores the seed catalog and drops the custom studio background.
func (s *CatalogService) Reset(sid string) error {
	if err := s.Catalog.Save(sid, stores.SeedCatalog()); err != nil {
		return err
	}
	return s.Studio.SetBackground(sid, "")
}

// BuildCustomPrint synthesizes the one-off product behind a custom upload.
// It is added to the cart, never to the catalog, and its id is a random
// token so two uploads in the same instant cannot collide.
func (s *CatalogService) BuildCustomPrint(image, title string) (domain.Product, error) {
	if image == "" {
		return domain.Product{}, ErrRejected
	}
	if strings.TrimSpace(title) == "" {
		title = "Impression Personnalisée"
	}
	return domain.Product{
		ID:          "custom-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Title:       strings.TrimSpace(title),
		Category:    domain.CategoryPerso,
		Image:       image,
		Description: "Tirage d'une photo personnelle.",
		Rating:      5.0,
		IsCustom:    true,
	}, nil
}
