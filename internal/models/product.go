package models

// Product represents one purchasable catalog entry.
// Products are never mutated or deleted after creation; correcting a
// mistake means adding a new product.
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string `json:"id"`

	// Barcode is the scannable code printed on the item. Optional, and not
	// guaranteed unique across the catalog.
	Barcode string `json:"barcode"`

	// Name is the display name of the product. Always non-empty.
	Name string `json:"name"`

	// Price is the unit price, non-negative and rounded to two fraction
	// digits when the product is created.
	Price float64 `json:"price"`
}
