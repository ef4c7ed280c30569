package request

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

type AddonKeyRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	AddonName string `json:"addon_name" binding:"required"`
}

// DiscountCodeRequest creates or replaces a company discount code.

type DiscountCodeRequest struct {
	CompanyID         string            `json:"company_id" binding:"required"`
	Code              string            `json:"code" binding:"required"`
	Type              string            `json:"type" binding:"required"`
	Value             float64           `json:"value"`
	AppliesToServices []string          `json:"applies_to_services"`
	AppliesToAddOns   []AddonKeyRequest `json:"applies_to_addons"`
	Active            bool              `json:"active"`
	ExpirationDate    *time.Time        `json:"expiration_date"`
	MaxUses           int               `json:"max_uses"`
}

func (r DiscountCodeRequest) ToEntity() entities.DiscountCode {
	addons := make([]entities.AddonKey, 0, len(r.AppliesToAddOns))
	for _, k := range r.AppliesToAddOns {
		addons = append(addons, entities.AddonKey{ServiceRef: k.ServiceID, AddonName: k.AddonName})
	}
	return entities.DiscountCode{
		CompanyID:         r.CompanyID,
		Code:              r.Code,
		Type:              entities.DiscountType(r.Type),
		Value:             r.Value,
		AppliesToServices: r.AppliesToServices,
		AppliesToAddOns:   addons,
		Active:            r.Active,
		ExpirationDate:    r.ExpirationDate,
		MaxUses:           r.MaxUses,
	}
}
