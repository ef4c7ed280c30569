package pricing

import (
	"errors"
	"fmt"

	"inspect_billing/internal/domain/entities"
)

var (
	ErrNoServiceItem      = errors.New("pricing items must contain at least one service item")
	ErrDuplicateService   = errors.New("duplicate service item")
	ErrAddonParentMissing = errors.New("addon references a service not present in pricing items")
	ErrNegativePrice      = errors.New("pricing item price must not be negative")
)

// ValidateItems checks the structural invariants of a job's pricing items:
//   - at least one service item is always present;
//   - exactly one service item per distinct serviceRef;
//   - every addon's serviceRef points at a service item in the collection;
//   - service and addon items carry a serviceRef, additional items do not
//     need one;
//   - no negative amounts.
//
// It is called before any item list is persisted, so an update that would
// remove the last service is rejected and the stored state stays untouched.
func ValidateItems(items []entities.PricingItem) error {
	seenServices := make(map[string]bool)
	for _, it := range items {
		if it.Price < 0 || it.OriginalPrice < 0 {
			return fmt.Errorf("%w: %q", ErrNegativePrice, it.Label)
		}
		switch it.Kind {
		case entities.ItemKindService:
			ref := entities.NormalizeRef(it.ServiceRef)
			if ref == "" {
				return fmt.Errorf("service item %q has no service id", it.Label)
			}
			if seenServices[ref] {
				return fmt.Errorf("%w: %s", ErrDuplicateService, ref)
			}
			seenServices[ref] = true
		case entities.ItemKindAddon:
			if entities.NormalizeRef(it.ServiceRef) == "" {
				return fmt.Errorf("addon item %q has no service id", it.Label)
			}
			if entities.NormalizeAddonName(it.AddonName) == "" {
				return fmt.Errorf("addon item %q has no addon name", it.Label)
			}
		case entities.ItemKindAdditional:
			// no serviceRef
		default:
			return fmt.Errorf("unknown pricing item kind %q", it.Kind)
		}
	}

	if len(seenServices) == 0 {
		return ErrNoServiceItem
	}

	for _, it := range items {
		if it.Kind == entities.ItemKindAddon && !seenServices[entities.NormalizeRef(it.ServiceRef)] {
			return fmt.Errorf("%w: %s/%s", ErrAddonParentMissing, it.ServiceRef, it.AddonName)
		}
	}
	return nil
}

// NormalizeItems canonicalizes refs/names and backfills OriginalPrice from
// Price for items that arrive without one, so downstream discount math always
// has a pre-discount amount to read.
func NormalizeItems(items []entities.PricingItem) []entities.PricingItem {
	out := make([]entities.PricingItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].ServiceRef = entities.NormalizeRef(out[i].ServiceRef)
		if out[i].Kind == entities.ItemKindAdditional {
			out[i].ServiceRef = ""
			out[i].AddonName = ""
		}
		if out[i].OriginalPrice == 0 && out[i].Price > 0 {
			out[i].OriginalPrice = out[i].Price
		}
	}
	return out
}
