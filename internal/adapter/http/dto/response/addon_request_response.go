package response

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

type RequestedAddonResponse struct {
	RequestID   string     `json:"request_id"`
	JobID       string     `json:"job_id"`
	ServiceID   string     `json:"service_id"`
	AddonName   string     `json:"addon_name"`
	AddFee      float64    `json:"add_fee"`
	AddHours    float64    `json:"add_hours,omitempty"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func FromRequestedAddon(r entities.RequestedAddon) RequestedAddonResponse {
	return RequestedAddonResponse{
		RequestID:   r.ID,
		JobID:       r.JobID,
		ServiceID:   r.ServiceRef,
		AddonName:   r.AddonName,
		AddFee:      r.AddFee,
		AddHours:    r.AddHours,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
		ProcessedAt: r.ProcessedAt,
	}
}

// ProcessedAddonResponse is returned by the approve/reject endpoint so the
// caller sees the request outcome and the job's new pricing state together.
type ProcessedAddonResponse struct {
	Request RequestedAddonResponse `json:"request"`
	Job     *JobResponse           `json:"job,omitempty"`
}
