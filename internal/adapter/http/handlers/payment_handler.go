package handlers

import (
	"errors"
	"log"
	"net/http"

	request "inspect_billing/internal/adapter/http/dto/request"
	response "inspect_billing/internal/adapter/http/dto/response"
	"inspect_billing/internal/usecase"
	"inspect_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for a job's payment ledger and
// financial snapshot.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetSnapshot returns the job's full financial snapshot.
func (h *PaymentHandler) GetSnapshot(c *gin.Context) {
	jobID := c.Param("job_id")

	snap, err := h.usecase.GetSnapshot(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancialSnapshot(snap))
}

// RecordPayment appends a manual payment to the ledger.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordPayment(c.Request.Context(), jobID, payload.Amount, payload.PaidAt, payload.PaymentMethod)
	if err != nil {
		log.Printf("[payment][handler] record failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success job_id=%s payment_id=%s", jobID, created.ID)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(created))
}

// UpdatePayment edits a manual ledger entry.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePayment(c.Request.Context(), jobID, payload.PaymentID, payload.Amount, payload.PaidAt, payload.PaymentMethod)
	if err != nil {
		log.Printf("[payment][handler] update failed job_id=%s payment_id=%s err=%v", jobID, payload.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(updated))
}

// DeletePayment removes a manual ledger entry.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	jobID := c.Param("job_id")
	paymentID := c.Query("paymentId")

	if err := h.usecase.DeletePayment(c.Request.Context(), jobID, paymentID); err != nil {
		log.Printf("[payment][handler] delete failed job_id=%s payment_id=%s err=%v", jobID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": paymentID})
}

// MarkPaid settles the job's remaining balance with a single manual entry.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	jobID := c.Param("job_id")

	created, err := h.usecase.MarkPaid(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[payment][handler] mark-paid failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] mark-paid success job_id=%s payment_id=%s amount=%.2f", jobID, created.ID, created.Amount)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(created))
}

// MercadoPagoWebhook records an approved gateway payment from a provider
// notification. Unknown or repeated notifications answer 200 so the provider
// stops retrying.
func (h *PaymentHandler) MercadoPagoWebhook(c *gin.Context) {
	var payload request.MercadoPagoWebhookRequest
	_ = c.ShouldBindJSON(&payload)

	transactionID := payload.TransactionID(c.Query("id"))
	log.Printf("[payment][handler] webhook received transaction_id=%q action=%q", transactionID, payload.Action)

	created, err := h.usecase.RecordGatewayPayment(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] webhook failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(created))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidGatewayID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_BALANCE", "Payment would exceed the remaining balance", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentImmutable):
		return pkg.NewDomainErrorSimple("PAYMENT_IMMUTABLE", "Gateway payments cannot be edited or deleted", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNothingToSettle):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SETTLE", "Job has no remaining balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayPaymentRejected):
		return pkg.NewDomainErrorSimple("GATEWAY_PAYMENT_NOT_APPROVED", "Gateway payment is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
