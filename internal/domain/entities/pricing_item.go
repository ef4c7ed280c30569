package entities

import "strings"

// ItemKind classifies a pricing line.
//
//go:generate stringer -type=ItemKind

type ItemKind string

const (
	ItemKindService    ItemKind = "service"
	ItemKindAddon      ItemKind = "addon"
	ItemKindAdditional ItemKind = "additional"
)

// PricingItem is one priced line of an inspection job.
//
// Identity rules:
//   - service items: one per distinct ServiceRef.
//   - addon items: identified by (ServiceRef, AddonName) with AddonName
//     compared case-insensitively; the ServiceRef must point at a service
//     item in the same collection.
//   - additional items: free-form charges, no ServiceRef.
//
// Monetary representation:
//   - Price is the current (possibly discounted) amount.
//   - OriginalPrice is the pre-discount amount; discount math always reads
//     OriginalPrice so re-applying a code never compounds.

type PricingItem struct {
	Kind          ItemKind `json:"type"`
	ServiceRef    string   `json:"service_id,omitempty"`
	AddonName     string   `json:"addon_name,omitempty"`
	Label         string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Hours         float64  `json:"hours,omitempty"`
}

// NormalizeRef canonicalizes a serviceRef so equality is structural rather
// than representation-dependent.
func NormalizeRef(ref string) string {
	return strings.TrimSpace(ref)
}

// NormalizeAddonName canonicalizes an addon name for identity comparison.
func NormalizeAddonName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameAddon reports whether the item is the addon identified by
// (serviceRef, addonName).
func (i PricingItem) SameAddon(serviceRef, addonName string) bool {
	return i.Kind == ItemKindAddon &&
		NormalizeRef(i.ServiceRef) == NormalizeRef(serviceRef) &&
		NormalizeAddonName(i.AddonName) == NormalizeAddonName(addonName)
}

// HasServiceItem reports whether items contains a service line for serviceRef.
func HasServiceItem(items []PricingItem, serviceRef string) bool {
	ref := NormalizeRef(serviceRef)
	for _, it := range items {
		if it.Kind == ItemKindService && NormalizeRef(it.ServiceRef) == ref {
			return true
		}
	}
	return false
}

// CountServiceItems returns the number of service-kind lines.
func CountServiceItems(items []PricingItem) int {
	n := 0
	for _, it := range items {
		if it.Kind == ItemKindService {
			n++
		}
	}
	return n
}
