// Package filters turns the full catalog into the filtered, sorted view the
// listing page shows. Apply is stateless: the same inputs always produce the
// same sequence.
package filters

import (
	"sort"
	"strings"

	"merma/models"
)

// Sort keys accepted by Apply. Anything else falls back to SortByName.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
	SortByNewest    = "newest"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Query struct {
	SearchTerm string     `json:"searchTerm"`
	Category   string     `json:"category"`
	SortBy     string     `json:"sortBy"`
	PriceRange PriceRange `json:"priceRange"`
}

// Apply filters and sorts a copy of the product list. Search matches are
// case-insensitive substrings over name, description and tags; category is
// an exact match; the price range is inclusive at both ends. Numeric sorts
// are stable, so ties keep the catalog's relative order.
func Apply(products []models.Product, q Query) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	term := strings.ToLower(q.SearchTerm)

	for _, p := range products {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if p.Price < q.PriceRange.Min || p.Price > q.PriceRange.Max {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch q.SortBy {
		case SortByPriceLow:
			return a.Price < b.Price
		case SortByPriceHigh:
			return a.Price > b.Price
		case SortByRating:
			return a.Rating > b.Rating
		case SortByNewest:
			// Higher ids are newer.
			return a.ID > b.ID
		default:
			return a.Name < b.Name
		}
	})

	return filtered
}

func matchesTerm(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
