// Package pos wires the catalog, cart, and settings into a single register.
//
// Register is the only owner of mutable state. Every mutating operation
// persists the touched snapshot before returning, so the store always holds
// the latest state and a restart resumes the sale in progress. The pricing
// and receipt packages stay pure; all I/O happens here.
package pos

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/cart"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/catalog"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/pricing"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/receipt"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/storage"
)

// Sale completion failure kinds. The cart is left untouched on either;
// callers surface a message per kind.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInsufficientCash = errors.New("not enough cash received")
)

// Register owns the full register state: catalog, cart, and settings.
type Register struct {
	mu       sync.Mutex
	kv       storage.KV
	catalog  *catalog.Catalog
	lines    cart.Lines
	settings models.Settings
	now      func() time.Time
	newID    catalog.IDGenerator
}

// Option configures a Register before its state is loaded.
type Option func(*Register)

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Register) { r.now = now }
}

// WithIDGenerator overrides product ID generation.
func WithIDGenerator(newID catalog.IDGenerator) Option {
	return func(r *Register) { r.newID = newID }
}

// Open loads the persisted register state from kv, seeding the catalog with
// the built-in sample products on first run (or whenever the persisted
// catalog is missing, corrupt, or empty).
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Register, error) {
	r := &Register{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	products := storage.Load(ctx, kv, storage.KeyProducts, []models.Product(nil))
	r.catalog = catalog.New(products, r.newID)
	if r.catalog.Seed() {
		if err := storage.Save(ctx, kv, storage.KeyProducts, r.catalog.Products()); err != nil {
			return nil, err
		}
		slog.Info("catalog seeded with sample products", "count", len(r.catalog.Products()))
	}

	r.lines = storage.Load(ctx, kv, storage.KeyCart, cart.Lines{})
	r.settings = storage.Load(ctx, kv, storage.KeySettings, models.Settings{})
	return r, nil
}

// Products returns the full catalog, most recent first.
func (r *Register) Products() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog.Products()
}

// Search filters the catalog by name or barcode substring.
func (r *Register) Search(query string) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog.Search(query)
}

// Settings returns the last persisted clamped percentages.
func (r *Register) Settings() models.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// Lines returns a copy of the current cart lines in order.
func (r *Register) Lines() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CartLine, len(r.lines))
	copy(out, r.lines)
	return out
}

// LineCount is the total quantity across the cart, for display.
func (r *Register) LineCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lines.Count()
}

// AddProduct validates and adds a product to the front of the catalog.
// A *catalog.ValidationError means nothing was added or persisted.
func (r *Register) AddProduct(ctx context.Context, barcode, name string, price float64) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.catalog.Add(barcode, name, price)
	if err != nil {
		return models.Product{}, err
	}
	if err := storage.Save(ctx, r.kv, storage.KeyProducts, r.catalog.Products()); err != nil {
		return models.Product{}, err
	}
	slog.Info("product added", "id", p.ID, "name", p.Name, "price", p.Price)
	return p, nil
}

// AddToCart increments the line for productID, creating it at quantity one.
// Adding an unknown product is a silent no-op.
func (r *Register) AddToCart(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.catalog.FindByID(productID); !ok {
		return nil
	}
	r.lines = r.lines.AddOrIncrement(productID)
	return r.saveCart(ctx)
}

// SetQty sets the quantity for productID to max(1, floor(qty)).
func (r *Register) SetQty(ctx context.Context, productID string, qty float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = r.lines.SetQty(productID, qty)
	return r.saveCart(ctx)
}

// DecrementLine lowers the quantity by one, dropping the line at zero.
func (r *Register) DecrementLine(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = r.lines.Decrement(productID)
	return r.saveCart(ctx)
}

// RemoveLine deletes the line regardless of quantity.
func (r *Register) RemoveLine(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = r.lines.Remove(productID)
	return r.saveCart(ctx)
}

// NewSale empties the cart.
func (r *Register) NewSale(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = r.lines.Clear()
	return r.saveCart(ctx)
}

// Totals recomputes the breakdown for the current cart and persists the
// clamped percentages as the new settings. Settings are a cache of the last
// valid inputs, not independent state, so every recompute rewrites them.
func (r *Register) Totals(ctx context.Context, rawDiscountPct, rawTaxPct float64) (pricing.Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalsLocked(ctx, rawDiscountPct, rawTaxPct)
}

// Receipt renders a receipt preview for the current cart without
// completing the sale.
func (r *Register) Receipt(ctx context.Context, rawDiscountPct, rawTaxPct, cashTendered float64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals, err := r.totalsLocked(ctx, rawDiscountPct, rawTaxPct)
	if err != nil {
		return "", err
	}
	return receipt.Build(r.lines, r.catalog.Products(), totals, cashTendered, r.now()), nil
}

// CompleteSale finishes the sale: it rejects an empty cart (ErrEmptyCart)
// and short or non-finite cash (ErrInsufficientCash), otherwise renders the
// receipt, clears the cart, persists, and returns the receipt text. Both
// failure branches leave all state untouched.
func (r *Register) CompleteSale(ctx context.Context, rawDiscountPct, rawTaxPct, cashTendered float64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == 0 {
		return "", ErrEmptyCart
	}

	totals, err := r.totalsLocked(ctx, rawDiscountPct, rawTaxPct)
	if err != nil {
		return "", err
	}
	if math.IsNaN(cashTendered) || math.IsInf(cashTendered, 0) || cashTendered < totals.Total {
		return "", ErrInsufficientCash
	}

	text := receipt.Build(r.lines, r.catalog.Products(), totals, cashTendered, r.now())

	r.lines = r.lines.Clear()
	if err := r.saveCart(ctx); err != nil {
		return "", err
	}
	slog.Info("sale completed", "total", totals.Total, "cash", cashTendered)
	return text, nil
}

func (r *Register) totalsLocked(ctx context.Context, rawDiscountPct, rawTaxPct float64) (pricing.Totals, error) {
	totals := pricing.ComputeTotals(r.lines, r.catalog.Products(), rawDiscountPct, rawTaxPct)

	// Replace-on-write, even when unchanged: the store always mirrors the
	// last recompute.
	settings := models.Settings{DiscountPct: totals.DiscountPct, TaxPct: totals.TaxPct}
	if err := storage.Save(ctx, r.kv, storage.KeySettings, settings); err != nil {
		return pricing.Totals{}, err
	}
	r.settings = settings
	return totals, nil
}

func (r *Register) saveCart(ctx context.Context) error {
	return storage.Save(ctx, r.kv, storage.KeyCart, r.lines)
}
