// Package pricing computes the totals breakdown for the current sale.
//
// Everything here is a pure function over the cart and catalog; nothing is
// persisted or logged, so the math is trivially testable.
package pricing

import (
	"math"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
)

// Totals is the computed breakdown for the current cart and percentages.
// It is recomputed on every call and never persisted. DiscountPct and
// TaxPct carry the clamped values so callers can cache them as settings.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DiscountPct float64 `json:"discountPct"`
	DiscountAmt float64 `json:"discountAmt"`
	TaxPct      float64 `json:"taxPct"`
	TaxAmt      float64 `json:"taxAmt"`
	Total       float64 `json:"total"`
}

// ComputeTotals prices the cart against the catalog:
//
//	subtotal = Σ price × qty over resolvable lines
//	discount = subtotal × discountPct/100
//	tax      = max(0, subtotal − discount) × taxPct/100
//	total    = taxable + tax
//
// Lines referencing a product missing from the catalog are skipped. Both
// raw percentages are clamped into [0, 100] before use.
func ComputeTotals(lines []models.CartLine, products []models.Product, rawDiscountPct, rawTaxPct float64) Totals {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var subtotal float64
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		subtotal += p.Price * float64(line.Qty)
	}

	discountPct := ClampPercent(rawDiscountPct)
	taxPct := ClampPercent(rawTaxPct)

	discountAmt := subtotal * discountPct / 100
	// Discount can never push the taxable base negative.
	taxable := math.Max(0, subtotal-discountAmt)
	taxAmt := taxable * taxPct / 100

	return Totals{
		Subtotal:    subtotal,
		DiscountPct: discountPct,
		DiscountAmt: discountAmt,
		TaxPct:      taxPct,
		TaxAmt:      taxAmt,
		Total:       taxable + taxAmt,
	}
}

// ClampPercent coerces a raw percentage into [0, 100]. Non-finite input
// (NaN, ±Inf) clamps to zero.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Min(100, math.Max(0, v))
}

// ComputeChange is cashTendered minus total; non-finite cash counts as
// nothing tendered. The result is deliberately not floored at zero: a
// negative change tells the display the cash is short. Blocking the sale
// on insufficient cash is the register's job, not this function's.
func ComputeChange(total, cashTendered float64) float64 {
	if math.IsNaN(cashTendered) || math.IsInf(cashTendered, 0) {
		return 0
	}
	return cashTendered - total
}
