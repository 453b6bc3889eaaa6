package models

// CartLine represents one line item of the in-progress sale.
// The cart holds at most one line per product; repeated adds bump Qty.
type CartLine struct {
	// ProductID references a catalog product by ID. The reference is
	// non-owning: if the product cannot be resolved the line is skipped.
	ProductID string `json:"productId"`

	// Qty is the quantity for this line, always a positive integer. A line
	// whose quantity would drop to zero is removed instead.
	Qty int `json:"qty"`
}
