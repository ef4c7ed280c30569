package entities

import "time"

// AddonRequestStatus is the lifecycle of a customer-submitted addon request.
//
// pending is the only non-terminal state; approved/rejected are one-shot.

type AddonRequestStatus string

const (
	AddonRequestStatusPending  AddonRequestStatus = "pending"
	AddonRequestStatusApproved AddonRequestStatus = "approved"
	AddonRequestStatusRejected AddonRequestStatus = "rejected"
)

// RequestedAddon is a customer-initiated addon request, kept separate from the
// job's pricing items until staff approves it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id

type RequestedAddon struct {
	ID          string             `json:"id"`
	JobID       string             `json:"job_id"`
	ServiceRef  string             `json:"service_id"`
	AddonName   string             `json:"addon_name"`
	AddFee      float64            `json:"add_fee"`
	AddHours    float64            `json:"add_hours,omitempty"`
	Status      AddonRequestStatus `json:"status"`
	RequestedAt time.Time          `json:"requested_at"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
}

// Resolved reports whether the request already reached a terminal state.
func (r RequestedAddon) Resolved() bool {
	return r.Status != AddonRequestStatusPending
}
