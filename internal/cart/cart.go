// Package cart implements the line-item math for the in-progress sale.
//
// The cart holds at most one line per product. All operations are pure
// collection updates; persistence and catalog checks belong to the caller
// that owns both collections.
package cart

import (
	"math"
	"slices"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
)

// Lines is the ordered set of cart line items.
type Lines []models.CartLine

// index returns the position of the line for productID, or -1.
func (l Lines) index(productID string) int {
	for i, line := range l {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddOrIncrement bumps the quantity for productID, creating the line at
// quantity one when absent. Product existence is the caller's concern.
func (l Lines) AddOrIncrement(productID string) Lines {
	if i := l.index(productID); i >= 0 {
		l[i].Qty++
		return l
	}
	return append(l, models.CartLine{ProductID: productID, Qty: 1})
}

// SetQty sets the quantity for productID to max(1, floor(qty)). Quantities
// cannot reach zero through this path; use Decrement or Remove for that.
// No-op when no line exists.
func (l Lines) SetQty(productID string, qty float64) Lines {
	i := l.index(productID)
	if i < 0 {
		return l
	}

	q := 1
	if !math.IsNaN(qty) && !math.IsInf(qty, 0) {
		q = max(1, int(math.Floor(qty)))
	}
	l[i].Qty = q
	return l
}

// Decrement lowers the quantity for productID by one, removing the line
// entirely when it would reach zero. No-op when no line exists.
func (l Lines) Decrement(productID string) Lines {
	i := l.index(productID)
	if i < 0 {
		return l
	}
	l[i].Qty--
	if l[i].Qty <= 0 {
		return slices.Delete(l, i, i+1)
	}
	return l
}

// Remove deletes the line for productID regardless of quantity.
func (l Lines) Remove(productID string) Lines {
	i := l.index(productID)
	if i < 0 {
		return l
	}
	return slices.Delete(l, i, i+1)
}

// Clear empties the cart, used for "new sale" and after completing a sale.
func (l Lines) Clear() Lines {
	return Lines{}
}

// Count is the total quantity across all lines, zero for an empty cart.
func (l Lines) Count() int {
	count := 0
	for _, line := range l {
		count += line.Qty
	}
	return count
}
