package stores

import "pixlumia/internal/domain"

// SeedCatalog returns a fresh copy of the built-in catalog. Product base
// prices are zero; the print format carries the price.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "test-0",
			Title:       "Poster de Test (Gratuit)",
			Category:    domain.CategoryPerso,
			Image:       "https://images.unsplash.com/photo-1579546929518-9e396f3cc809?q=80&w=1000&auto=format&fit=crop",
			Description: "Produit spécial pour tester le tunnel de commande sans frais.",
			Rating:      5.0,
			IsCustom:    true, // forces the free price rule
		},
		{
			ID:          "1",
			Title:       "Inception",
			Category:    domain.CategoryFilms,
			Image:       "https://m.media-amazon.com/images/I/912AErFSBHL._AC_SL1500_.jpg",
			Description: "Affiche officielle du chef-d'œuvre de Christopher Nolan.",
			Rating:      4.9,
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Dune: Part Two",
			Category:    domain.CategoryFilms,
			Image:       "https://m.media-amazon.com/images/I/818vY3A7S2L._AC_SL1500_.jpg",
			Description: "Le blockbuster épique de Denis Villeneuve.",
			Rating:      4.8,
			Featured:    true,
		},
		{
			ID:          "3",
			Title:       "The Last of Us",
			Category:    domain.CategorySeries,
			Image:       "https://m.media-amazon.com/images/I/81p1+l5XWLL._AC_SL1500_.jpg",
			Description: "L'affiche officielle de la série HBO.",
			Rating:      4.9,
		},
		{
			ID:          "4",
			Title:       "Arcane",
			Category:    domain.CategorySeries,
			Image:       "https://m.media-amazon.com/images/I/71W17f7P29L._AC_SL1000_.jpg",
			Description: "L'art visuel révolutionnaire de Fortiche.",
			Rating:      5.0,
			Featured:    true,
		},
	}
}
