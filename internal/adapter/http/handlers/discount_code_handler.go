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

var errInvalidDiscountPayload = pkg.NewDomainErrorSimple("INVALID_DISCOUNT_INPUT", "Invalid discount code payload", http.StatusBadRequest)

// DiscountCodeHandler handles HTTP requests for company discount codes.

type DiscountCodeHandler struct {
	usecase usecase.IDiscountCodeUseCase
}

func NewDiscountCodeHandler(uc usecase.IDiscountCodeUseCase) *DiscountCodeHandler {
	return &DiscountCodeHandler{usecase: uc}
}

func (h *DiscountCodeHandler) Create(c *gin.Context) {
	var payload request.DiscountCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[discount][handler] create failed company_id=%s err=%v", payload.CompanyID, err)
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDiscountCode(created))
}

func (h *DiscountCodeHandler) Update(c *gin.Context) {
	codeID := c.Param("code_id")

	var payload request.DiscountCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	d := payload.ToEntity()
	d.ID = codeID

	updated, err := h.usecase.Update(c.Request.Context(), d)
	if err != nil {
		log.Printf("[discount][handler] update failed code_id=%s err=%v", codeID, err)
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDiscountCode(updated))
}

func (h *DiscountCodeHandler) GetByID(c *gin.Context) {
	codeID := c.Param("code_id")

	d, err := h.usecase.GetByID(c.Request.Context(), codeID)
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDiscountCode(d))
}

func (h *DiscountCodeHandler) ListByCompany(c *gin.Context) {
	companyID := c.Query("company_id")

	codes, err := h.usecase.ListByCompanyID(c.Request.Context(), companyID)
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.DiscountCodeResponse, 0, len(codes))
	for _, d := range codes {
		out = append(out, response.FromDiscountCode(d))
	}
	c.JSON(http.StatusOK, out)
}

func mapDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidDiscountCode),
		errors.Is(err, usecase.ErrInvalidDiscountType), errors.Is(err, usecase.ErrInvalidDiscountValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountCodeNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_NOT_FOUND", "Discount code not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
