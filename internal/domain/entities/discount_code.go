package entities

import "time"

// DiscountType selects how a code reduces a qualifying item.

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

// AddonKey identifies a discountable addon within a service.

type AddonKey struct {
	ServiceRef string `json:"service_id"`
	AddonName  string `json:"addon_name"`
}

// DiscountCode is a reusable company-scoped discount rule.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Eligibility: a code discounts nothing when inactive, expired, or when its
// usage cap is exhausted. At most one code is attached to a job at a time.

type DiscountCode struct {
	ID                string       `json:"id"`
	CompanyID         string       `json:"company_id"`
	Code              string       `json:"code"`
	Type              DiscountType `json:"type"`
	Value             float64      `json:"value"`
	AppliesToServices []string     `json:"applies_to_services,omitempty"`
	AppliesToAddOns   []AddonKey   `json:"applies_to_addons,omitempty"`
	Active            bool         `json:"active"`
	ExpirationDate    *time.Time   `json:"expiration_date,omitempty"`
	MaxUses           int          `json:"max_uses,omitempty"`
	TimesUsed         int          `json:"times_used"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// EligibleAt reports whether the code can produce any discount at the given
// evaluation time.
func (d DiscountCode) EligibleAt(now time.Time) bool {
	if !d.Active {
		return false
	}
	if d.ExpirationDate != nil && d.ExpirationDate.Before(now) {
		return false
	}
	if d.MaxUses > 0 && d.TimesUsed >= d.MaxUses {
		return false
	}
	return true
}

// ExcludingHolderUse returns the code as seen by a job that already holds it:
// the use consumed when the code was attached must not count toward exhausting
// the code for that same job, or a single-use code would never discount the
// job that spent its use.
func (d DiscountCode) ExcludingHolderUse() DiscountCode {
	if d.TimesUsed > 0 {
		d.TimesUsed--
	}
	return d
}

// CoversService reports whether the code applies to the given service line.
func (d DiscountCode) CoversService(serviceRef string) bool {
	ref := NormalizeRef(serviceRef)
	for _, s := range d.AppliesToServices {
		if NormalizeRef(s) == ref {
			return true
		}
	}
	return false
}

// CoversAddon reports whether the code applies to the given addon line.
func (d DiscountCode) CoversAddon(serviceRef, addonName string) bool {
	ref := NormalizeRef(serviceRef)
	name := NormalizeAddonName(addonName)
	for _, k := range d.AppliesToAddOns {
		if NormalizeRef(k.ServiceRef) == ref && NormalizeAddonName(k.AddonName) == name {
			return true
		}
	}
	return false
}
