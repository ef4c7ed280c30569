package handlers

import (
	"errors"
	"log"
	"net/http"

	request "inspect_billing/internal/adapter/http/dto/request"
	response "inspect_billing/internal/adapter/http/dto/response"
	"inspect_billing/internal/domain/pricing"
	"inspect_billing/internal/usecase"
	"inspect_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for a job's pricing state.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob opens the financial record for a new inspection job.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, snap, err := h.usecase.CreateJob(c.Request.Context(), payload.CompanyID, request.ToItems(payload.Items))
	if err != nil {
		log.Printf("[job][handler] create failed company_id=%s err=%v", payload.CompanyID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job, &snap))
}

// GetPricing returns the job's current items and derived totals.
func (h *JobHandler) GetPricing(c *gin.Context) {
	jobID := c.Param("job_id")

	job, snap, err := h.usecase.GetJob(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job, &snap))
}

// UpdatePricing replaces the job's pricing item list.
func (h *JobHandler) UpdatePricing(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.UpdatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, snap, err := h.usecase.UpdatePricing(c.Request.Context(), jobID, request.ToItems(payload.Items))
	if err != nil {
		log.Printf("[job][handler] pricing update failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job, &snap))
}

// SelectDiscount attaches or clears the job's discount code.
func (h *JobHandler) SelectDiscount(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.SelectDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, snap, err := h.usecase.SelectDiscount(c.Request.Context(), jobID, payload.DiscountCodeID)
	if err != nil {
		log.Printf("[job][handler] discount select failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job, &snap))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrNoServiceItem):
		return pkg.NewDomainErrorSimple("NO_SERVICE_ITEM", "A job must keep at least one service item", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrDuplicateService), errors.Is(err, pricing.ErrAddonParentMissing), errors.Is(err, pricing.ErrNegativePrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_ITEMS", "Invalid pricing items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidPricingItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDiscountCodeNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_NOT_FOUND", "Discount code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobConflict):
		return pkg.NewDomainErrorSimple("JOB_CONFLICT", "Job was modified concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
