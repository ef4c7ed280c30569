package response

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

type PricingItemResponse struct {
	Type          string  `json:"type"`
	ServiceID     string  `json:"service_id,omitempty"`
	AddonName     string  `json:"addon_name,omitempty"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Hours         float64 `json:"hours,omitempty"`
}

func FromPricingItem(it entities.PricingItem) PricingItemResponse {
	return PricingItemResponse{
		Type:          string(it.Kind),
		ServiceID:     it.ServiceRef,
		AddonName:     it.AddonName,
		Name:          it.Label,
		Price:         it.Price,
		OriginalPrice: it.OriginalPrice,
		Hours:         it.Hours,
	}
}

type JobResponse struct {
	ID             string                     `json:"id"`
	CompanyID      string                     `json:"company_id"`
	Items          []PricingItemResponse      `json:"items"`
	DiscountCodeID string                     `json:"discount_code_id,omitempty"`
	Version        int64                      `json:"version"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
	Financials     *FinancialSnapshotResponse `json:"financials,omitempty"`
}

func FromJob(j entities.Job, snap *entities.FinancialSnapshot) JobResponse {
	items := make([]PricingItemResponse, 0, len(j.Items))
	for _, it := range j.Items {
		items = append(items, FromPricingItem(it))
	}
	res := JobResponse{
		ID:             j.ID,
		CompanyID:      j.CompanyID,
		Items:          items,
		DiscountCodeID: j.DiscountCodeID,
		Version:        j.Version,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if snap != nil {
		s := FromFinancialSnapshot(*snap)
		res.Financials = &s
	}
	return res
}
