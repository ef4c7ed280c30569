package request

// SubmitAddonRequest is the online-scheduler payload for a customer addon
// request.

type SubmitAddonRequest struct {
	ServiceID string  `json:"service_id" binding:"required"`
	AddonName string  `json:"addon_name" binding:"required"`
	AddFee    float64 `json:"add_fee"`
	AddHours  float64 `json:"add_hours"`
}

const (
	AddonActionApprove = "approve"
	AddonActionReject  = "reject"
)

// ProcessAddonRequest resolves a pending addon request one way or the other.
type ProcessAddonRequest struct {
	Action string `json:"action" binding:"required"`
}
