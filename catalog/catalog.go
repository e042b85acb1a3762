package catalog

import (
	"merma/models"
)

// Store holds the static reference data: products, categories, reviews and
// the fixed demo user. It is populated once at startup and read-only after
// that; every accessor returns a copy so callers cannot mutate the backing
// collections.
type Store struct {
	products   []models.Product
	categories []models.Category
	reviews    []models.Review
	user       models.User
}

func New() *Store {
	return &Store{
		products:   seedProducts,
		categories: seedCategories,
		reviews:    seedReviews,
		user:       seedUser,
	}
}

// cloneProduct copies the product along with its Tags slice, so callers
// never share a backing array with the store.
func cloneProduct(p models.Product) models.Product {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	return p
}

// Products returns the full product list.
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

func (s *Store) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Reviews() []models.Review {
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Product looks up a single product by id.
func (s *Store) Product(id int) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return models.Product{}, false
}

func (s *Store) Category(id string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ReviewsFor returns the reviews attached to one product.
func (s *Store) ReviewsFor(productID int) []models.Review {
	out := []models.Review{}
	for _, rv := range s.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out
}

// Featured returns the products flagged for the home page.
func (s *Store) Featured() []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// DemoUser is the single account record every successful login resolves to.
func (s *Store) DemoUser() models.User {
	return s.user
}
