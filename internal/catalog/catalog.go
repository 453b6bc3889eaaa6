// Package catalog manages the ordered collection of purchasable products.
//
// The catalog is append-only: products can be added and searched but never
// updated or deleted. New products go to the front so the most recently
// added ones show first.
package catalog

import (
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
)

// IDGenerator produces a fresh unique product ID.
// Injected so tests can use deterministic IDs; NewID is the default.
type IDGenerator func() string

// NewID generates a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// ValidationError reports rejected product input. The operation that
// returned it made no state change; callers surface the message to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid product: " + e.Reason
}

// Catalog is an ordered product collection, most recent first.
type Catalog struct {
	products []models.Product
	newID    IDGenerator
}

// New creates a Catalog over the given products. A nil newID falls back to
// random UUIDs.
func New(products []models.Product, newID IDGenerator) *Catalog {
	if newID == nil {
		newID = NewID
	}
	return &Catalog{products: products, newID: newID}
}

// Seed installs the built-in sample products when the catalog is empty.
// It reports whether seeding happened so the caller knows to persist.
func (c *Catalog) Seed() bool {
	if len(c.products) > 0 {
		return false
	}

	samples := []struct {
		barcode, name string
		price         float64
	}{
		{"701228", "Coca Cola", 23.00},
		{"100101", "Polo Shirt", 35.00},
		{"200202", "Milk 1L", 18.50},
		{"300303", "Instant Noodles", 2.20},
		{"400404", "Chocolate", 4.90},
		{"500505", "Coffee", 6.50},
	}

	c.products = make([]models.Product, len(samples))
	for i, s := range samples {
		c.products[i] = models.Product{
			ID:      c.newID(),
			Barcode: s.barcode,
			Name:    s.name,
			Price:   s.price,
		}
	}
	return true
}

// Add validates and prepends a new product, returning it. The name must be
// non-empty after trimming and the price a finite, non-negative number;
// anything else is a *ValidationError and the catalog is left unchanged.
// The price is rounded to two fraction digits on the way in.
func (c *Catalog) Add(barcode, name string, price float64) (models.Product, error) {
	name = strings.TrimSpace(name)
	barcode = strings.TrimSpace(barcode)

	if name == "" {
		return models.Product{}, &ValidationError{Reason: "name must not be empty"}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return models.Product{}, &ValidationError{Reason: "price must be a non-negative number"}
	}

	p := models.Product{
		ID:      c.newID(),
		Barcode: barcode,
		Name:    name,
		Price:   roundCents(price),
	}
	c.products = append([]models.Product{p}, c.products...)
	return p, nil
}

// roundCents rounds to two fraction digits, half away from zero at the
// cent boundary.
func roundCents(price float64) float64 {
	return decimal.NewFromFloat(price).Round(2).InexactFloat64()
}

// Search returns the products whose name or barcode contains the query,
// case-insensitively. A blank query returns the full catalog in order.
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Products()
	}

	out := []models.Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Barcode), q) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID looks up a product by ID.
func (c *Catalog) FindByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products returns a copy of the full collection, most recent first.
func (c *Catalog) Products() []models.Product {
	return slices.Clone(c.products)
}
