package pricing

import "inspect_billing/internal/domain/entities"

// Totals aggregates a job's pricing items and matched discounts.

type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// Calculate sums OriginalPrice over all items, sums the matched per-item
// discounts, and floors the grand total at zero.
//
// An empty item list should not occur (a job always keeps at least one
// service item) but yields an all-zero result rather than failing.
func Calculate(items []entities.PricingItem, discounts map[int]float64) Totals {
	t := Totals{}
	for i, it := range items {
		t.Subtotal += it.OriginalPrice
		t.DiscountAmount += discounts[i]
	}
	t.Total = t.Subtotal - t.DiscountAmount
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}
