package request

import (
	"inspect_billing/internal/domain/entities"
)

// PricingItemRequest is the wire shape of one priced line.
//
// original_price is optional on input: when omitted the current price is
// taken as the pre-discount amount.

type PricingItemRequest struct {
	Type          string  `json:"type" binding:"required"`
	ServiceID     string  `json:"service_id"`
	AddonName     string  `json:"addon_name"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Hours         float64 `json:"hours"`
}

func (r PricingItemRequest) ToEntity() entities.PricingItem {
	return entities.PricingItem{
		Kind:          entities.ItemKind(r.Type),
		ServiceRef:    r.ServiceID,
		AddonName:     r.AddonName,
		Label:         r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Hours:         r.Hours,
	}
}

// CreateJobRequest opens a job's financial record with its initial services.
type CreateJobRequest struct {
	CompanyID string               `json:"company_id" binding:"required"`
	Items     []PricingItemRequest `json:"items" binding:"required"`
}

// UpdatePricingRequest replaces the full pricing item list of a job.
type UpdatePricingRequest struct {
	Items []PricingItemRequest `json:"items" binding:"required"`
}

// SelectDiscountRequest attaches a discount code to a job; an empty id
// clears the current selection.
type SelectDiscountRequest struct {
	DiscountCodeID string `json:"discount_code_id"`
}

func ToItems(reqs []PricingItemRequest) []entities.PricingItem {
	items := make([]entities.PricingItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, r.ToEntity())
	}
	return items
}
