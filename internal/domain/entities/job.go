package entities

import "time"

// Job is the financial aggregate for one inspection job: its priced line
// items plus the discount code currently attached to it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Concurrency:
//   - Version is bumped on every write and checked with a conditional
//     expression, so two staff members editing pricing at once cannot
//     silently clobber each other.

type Job struct {
	ID             string        `json:"id"`
	CompanyID      string        `json:"company_id"`
	Items          []PricingItem `json:"items"`
	DiscountCodeID string        `json:"discount_code_id,omitempty"`
	Version        int64         `json:"version"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
