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

var errInvalidAddonPayload = pkg.NewDomainErrorSimple("INVALID_ADDON_INPUT", "Invalid addon request payload", http.StatusBadRequest)

// AddonRequestHandler handles HTTP requests for customer addon requests.

type AddonRequestHandler struct {
	usecase usecase.IAddonRequestUseCase
}

func NewAddonRequestHandler(uc usecase.IAddonRequestUseCase) *AddonRequestHandler {
	return &AddonRequestHandler{usecase: uc}
}

// Submit accepts an online-scheduler addon request for a job.
func (h *AddonRequestHandler) Submit(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.SubmitAddonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddonPayload.HTTPStatus, errInvalidAddonPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), jobID, payload.ServiceID, payload.AddonName, payload.AddFee, payload.AddHours)
	if err != nil {
		log.Printf("[addon][handler] submit failed job_id=%s err=%v", jobID, err)
		appErr := mapAddonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequestedAddon(created))
}

// List returns all addon requests of a job.
func (h *AddonRequestHandler) List(c *gin.Context) {
	jobID := c.Param("job_id")

	requests, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapAddonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.RequestedAddonResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, response.FromRequestedAddon(r))
	}
	c.JSON(http.StatusOK, out)
}

// Process resolves a pending addon request (approve or reject).
func (h *AddonRequestHandler) Process(c *gin.Context) {
	jobID := c.Param("job_id")
	requestID := c.Param("request_id")

	var payload request.ProcessAddonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddonPayload.HTTPStatus, errInvalidAddonPayload.ToHTTPError())
		return
	}

	switch payload.Action {
	case request.AddonActionApprove:
		req, job, err := h.usecase.Approve(c.Request.Context(), jobID, requestID)
		if err != nil {
			log.Printf("[addon][handler] approve failed job_id=%s request_id=%s err=%v", jobID, requestID, err)
			appErr := mapAddonError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		jobRes := response.FromJob(job, nil)
		c.JSON(http.StatusOK, response.ProcessedAddonResponse{
			Request: response.FromRequestedAddon(req),
			Job:     &jobRes,
		})
	case request.AddonActionReject:
		req, err := h.usecase.Reject(c.Request.Context(), jobID, requestID)
		if err != nil {
			log.Printf("[addon][handler] reject failed job_id=%s request_id=%s err=%v", jobID, requestID, err)
			appErr := mapAddonError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.ProcessedAddonResponse{Request: response.FromRequestedAddon(req)})
	default:
		c.JSON(errInvalidAddonPayload.HTTPStatus, errInvalidAddonPayload.ToHTTPError())
	}
}

func mapAddonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAddonRequest), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrRequestAlreadyResolved):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_RESOLVED", "Addon request was already approved or rejected", http.StatusConflict)
	case errors.Is(err, pricing.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "The requested service is no longer on this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddonRequestNotFound):
		return pkg.NewDomainErrorSimple("ADDON_REQUEST_NOT_FOUND", "Addon request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobConflict):
		return pkg.NewDomainErrorSimple("JOB_CONFLICT", "Job was modified concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
