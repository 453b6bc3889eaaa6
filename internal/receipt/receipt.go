// Package receipt renders the printable text receipt for a sale.
package receipt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/pricing"
)

const separator = "--------------------------"

// Money formats an amount with the fixed currency prefix and exactly two
// fraction digits, half away from zero. Non-finite amounts render as zero.
func Money(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	return "$" + decimal.NewFromFloat(n).StringFixed(2)
}

// formatPercent renders a clamped percentage without trailing zeros,
// so 10 prints as "10" and 12.5 as "12.5".
func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

// Build renders the full receipt text: header, timestamp, itemized lines in
// cart order, the totals block, and — only when cash was actually tendered —
// the cash and change lines. Lines referencing an unknown product are
// skipped. The caller passes the clock so rendering stays deterministic
// under test.
func Build(lines []models.CartLine, products []models.Product, totals pricing.Totals, cashTendered float64, now time.Time) string {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := []string{
		"=== SIMPLE POS RECEIPT ===",
		"Date: " + now.Format("Jan 2, 2006 3:04:05 PM"),
		separator,
	}

	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("%s x%d  %s", p.Name, line.Qty, Money(p.Price*float64(line.Qty))))
	}

	out = append(out,
		separator,
		"Subtotal:   "+Money(totals.Subtotal),
		fmt.Sprintf("Discount:  -%s (%s%%)", Money(totals.DiscountAmt), formatPercent(totals.DiscountPct)),
		fmt.Sprintf("Tax:        %s (%s%%)", Money(totals.TaxAmt), formatPercent(totals.TaxPct)),
		"TOTAL:      "+Money(totals.Total),
	)

	if !math.IsNaN(cashTendered) && !math.IsInf(cashTendered, 0) && cashTendered > 0 {
		out = append(out,
			"Cash:       "+Money(cashTendered),
			"Change:     "+Money(cashTendered-totals.Total),
		)
	}

	out = append(out, separator, "Thank you!")
	return strings.Join(out, "\n")
}
