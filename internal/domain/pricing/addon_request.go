package pricing

import (
	"errors"
	"time"

	"inspect_billing/internal/domain/entities"
)

var (
	ErrRequestAlreadyResolved = errors.New("addon request already resolved")
	ErrServiceNotFound        = errors.New("addon request references a service not on the job")
)

// ApproveAddonRequest turns a pending customer addon request into a pricing
// item. Both results are copies; the caller persists them together.
//
// Rules:
//   - only pending requests can be approved; re-processing fails.
//   - the target service must still be on the job.
//   - if an addon with the same (serviceRef, addonName) already exists the
//     item list is returned unchanged, but the request is still approved.
func ApproveAddonRequest(req entities.RequestedAddon, items []entities.PricingItem, now time.Time) (entities.RequestedAddon, []entities.PricingItem, error) {
	if req.Resolved() {
		return entities.RequestedAddon{}, nil, ErrRequestAlreadyResolved
	}
	if !entities.HasServiceItem(items, req.ServiceRef) {
		return entities.RequestedAddon{}, nil, ErrServiceNotFound
	}

	out := make([]entities.PricingItem, len(items))
	copy(out, items)

	exists := false
	for _, it := range out {
		if it.SameAddon(req.ServiceRef, req.AddonName) {
			exists = true
			break
		}
	}
	if !exists {
		fee := req.AddFee
		if fee < 0 {
			fee = 0
		}
		out = append(out, entities.PricingItem{
			Kind:          entities.ItemKindAddon,
			ServiceRef:    entities.NormalizeRef(req.ServiceRef),
			AddonName:     req.AddonName,
			Label:         req.AddonName,
			Price:         fee,
			OriginalPrice: fee,
			Hours:         req.AddHours,
		})
	}

	processed := now
	req.Status = entities.AddonRequestStatusApproved
	req.ProcessedAt = &processed
	return req, out, nil
}

// RejectAddonRequest terminally rejects a pending request. Pricing items are
// never touched.
func RejectAddonRequest(req entities.RequestedAddon, now time.Time) (entities.RequestedAddon, error) {
	if req.Resolved() {
		return entities.RequestedAddon{}, ErrRequestAlreadyResolved
	}
	processed := now
	req.Status = entities.AddonRequestStatusRejected
	req.ProcessedAt = &processed
	return req, nil
}
