package response

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

type AddonKeyResponse struct {
	ServiceID string `json:"service_id"`
	AddonName string `json:"addon_name"`
}

type DiscountCodeResponse struct {
	ID                string             `json:"id"`
	CompanyID         string             `json:"company_id"`
	Code              string             `json:"code"`
	Type              string             `json:"type"`
	Value             float64            `json:"value"`
	AppliesToServices []string           `json:"applies_to_services,omitempty"`
	AppliesToAddOns   []AddonKeyResponse `json:"applies_to_addons,omitempty"`
	Active            bool               `json:"active"`
	ExpirationDate    *time.Time         `json:"expiration_date,omitempty"`
	MaxUses           int                `json:"max_uses,omitempty"`
	TimesUsed         int                `json:"times_used"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FromDiscountCode(d entities.DiscountCode) DiscountCodeResponse {
	addons := make([]AddonKeyResponse, 0, len(d.AppliesToAddOns))
	for _, k := range d.AppliesToAddOns {
		addons = append(addons, AddonKeyResponse{ServiceID: k.ServiceRef, AddonName: k.AddonName})
	}
	return DiscountCodeResponse{
		ID:                d.ID,
		CompanyID:         d.CompanyID,
		Code:              d.Code,
		Type:              string(d.Type),
		Value:             d.Value,
		AppliesToServices: d.AppliesToServices,
		AppliesToAddOns:   addons,
		Active:            d.Active,
		ExpirationDate:    d.ExpirationDate,
		MaxUses:           d.MaxUses,
		TimesUsed:         d.TimesUsed,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
