package pricing

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

// MatchDiscount decides which pricing items qualify for the given code and
// how much each one is discounted.
//
// Matching is a fixed two-rule scheme:
//   - service items qualify when their serviceRef is in AppliesToServices.
//   - addon items qualify when (serviceRef, addonName) is in AppliesToAddOns,
//     with addonName compared case-insensitively.
//   - additional items never qualify.
//
// The per-item discount is computed from OriginalPrice, never from Price, and
// is capped at OriginalPrice so no item can be driven below zero. A nil,
// inactive, expired or exhausted code yields an empty map.
//
// Pure function: no side effects on items or code.
func MatchDiscount(items []entities.PricingItem, code *entities.DiscountCode, now time.Time) map[int]float64 {
	discounts := make(map[int]float64)
	if code == nil || !code.EligibleAt(now) {
		return discounts
	}

	for i, it := range items {
		qualifies := false
		switch it.Kind {
		case entities.ItemKindService:
			qualifies = code.CoversService(it.ServiceRef)
		case entities.ItemKindAddon:
			qualifies = code.CoversAddon(it.ServiceRef, it.AddonName)
		}
		if !qualifies {
			continue
		}

		discount := code.Value
		if code.Type == entities.DiscountTypePercent {
			discount = it.OriginalPrice * code.Value / 100
		}
		if discount > it.OriginalPrice {
			discount = it.OriginalPrice
		}
		if discount < 0 {
			discount = 0
		}
		discounts[i] = discount
	}
	return discounts
}

// ApplyDiscount returns a copy of items with Price recomputed as
// max(0, OriginalPrice - discount) for matched items and reset to
// OriginalPrice for everything else, so stale discounted prices never drift.
func ApplyDiscount(items []entities.PricingItem, discounts map[int]float64) []entities.PricingItem {
	out := make([]entities.PricingItem, len(items))
	copy(out, items)
	for i := range out {
		price := out[i].OriginalPrice - discounts[i]
		if price < 0 {
			price = 0
		}
		out[i].Price = price
	}
	return out
}
