package routes

import (
	"inspect_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs          = "/jobs"
	PathDiscountCodes = "/discount-codes"
	PathWebhooks      = "/webhooks"
)

func addBillingRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, paymentHandler *handlers.PaymentHandler, addonHandler *handlers.AddonRequestHandler, discountHandler *handlers.DiscountCodeHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id/pricing", jobHandler.GetPricing)
		jobs.PUT("/:job_id/pricing", jobHandler.UpdatePricing)
		jobs.PUT("/:job_id/discount", jobHandler.SelectDiscount)

		jobs.GET("/:job_id/payment", paymentHandler.GetSnapshot)
		jobs.POST("/:job_id/payment-history", paymentHandler.RecordPayment)
		jobs.PUT("/:job_id/payment-history", paymentHandler.UpdatePayment)
		jobs.DELETE("/:job_id/payment-history", paymentHandler.DeletePayment)
		jobs.POST("/:job_id/payments/mark-paid", paymentHandler.MarkPaid)

		jobs.POST("/:job_id/addon-requests", addonHandler.Submit)
		jobs.GET("/:job_id/addon-requests", addonHandler.List)
		jobs.PATCH("/:job_id/addon-requests/:request_id", addonHandler.Process)
	}

	discounts := rg.Group(PathDiscountCodes)
	{
		discounts.POST("", discountHandler.Create)
		discounts.GET("", discountHandler.ListByCompany)
		discounts.GET("/:code_id", discountHandler.GetByID)
		discounts.PUT("/:code_id", discountHandler.Update)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", paymentHandler.MercadoPagoWebhook)
	}
}
