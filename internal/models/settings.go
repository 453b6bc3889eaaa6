package models

// Settings holds the last applied discount and tax percentages.
//
// Settings are a derived cache, not independent user state: every totals
// recompute clamps the raw inputs to [0, 100] and the clamped values are
// what gets persisted here.
type Settings struct {
	DiscountPct float64 `json:"discountPct"`
	TaxPct      float64 `json:"taxPct"`
}
