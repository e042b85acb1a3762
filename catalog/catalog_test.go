package catalog

import "testing"

func TestProductLookup(t *testing.T) {
	cat := New()

	p, ok := cat.Product(3)
	if !ok {
		t.Fatal("expected product 3 to exist")
	}
	if p.Name != "Ladrillo Ecológico de Residuos" {
		t.Fatalf("unexpected product: %s", p.Name)
	}

	if _, ok := cat.Product(999); ok {
		t.Fatal("expected product 999 to be absent")
	}
}

func TestCategoryLookup(t *testing.T) {
	cat := New()

	if _, ok := cat.Category("compostaje"); !ok {
		t.Fatal("expected category compostaje to exist")
	}
	if _, ok := cat.Category("nope"); ok {
		t.Fatal("expected unknown category to be absent")
	}
}

func TestReviewsFor(t *testing.T) {
	cat := New()

	if got := len(cat.ReviewsFor(1)); got != 2 {
		t.Fatalf("expected 2 reviews for product 1, got %d", got)
	}
	if got := len(cat.ReviewsFor(2)); got != 0 {
		t.Fatalf("expected no reviews for product 2, got %d", got)
	}
}

func TestFeaturedSubset(t *testing.T) {
	cat := New()

	featured := cat.Featured()
	if len(featured) == 0 {
		t.Fatal("expected featured products")
	}
	for _, p := range featured {
		if !p.IsFeatured {
			t.Fatalf("product %d is not featured", p.ID)
		}
	}
}

// Accessors hand out copies; mutating a returned slice must not leak back
// into the store.
func TestAccessorsReturnCopies(t *testing.T) {
	cat := New()

	products := cat.Products()
	original := products[0].Name
	products[0].Name = "mutated"

	again := cat.Products()
	if again[0].Name != original {
		t.Fatal("mutation of returned slice leaked into the catalog")
	}
}

// Tags must not share a backing array with the store either.
func TestProductTagsAreDetached(t *testing.T) {
	cat := New()

	p, ok := cat.Product(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if len(p.Tags) == 0 {
		t.Fatal("expected product 1 to carry tags")
	}
	originalTag := p.Tags[0]
	p.Tags[0] = "mutated"

	again, _ := cat.Product(1)
	if again.Tags[0] != originalTag {
		t.Fatal("tag mutation leaked into the catalog")
	}

	list := cat.Products()
	list[0].Tags[0] = "mutated"
	if fresh := cat.Products(); fresh[0].Tags[0] == "mutated" {
		t.Fatal("tag mutation through Products leaked into the catalog")
	}
}
