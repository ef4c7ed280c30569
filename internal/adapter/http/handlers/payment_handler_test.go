package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inspect_billing/internal/adapter/http/handlers/mocks"
	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GetSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/payment", h.GetSnapshot)

		uc.EXPECT().GetSnapshot(gomock.Any(), "missing").Return(entities.FinancialSnapshot{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/payment", h.GetSnapshot)

		snap := entities.FinancialSnapshot{Subtotal: 350, DiscountAmount: 30, Total: 320, AmountPaid: 200, RemainingBalance: 120}
		uc.EXPECT().GetSnapshot(gomock.Any(), "job-1").Return(snap, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["total"] != float64(320) || res["remaining_balance"] != float64(120) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payment-history", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payment-history", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("exceeds balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payment-history", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "job-1", 500.0, gomock.Any(), "check").Return(entities.PaymentRecord{}, usecase.ErrPaymentExceedsBalance)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payment-history", bytes.NewBufferString(`{"amount":500,"payment_method":"check"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["code"] != "PAYMENT_EXCEEDS_BALANCE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payment-history", h.RecordPayment)

		created := entities.PaymentRecord{ID: "pay-1", JobID: "job-1", Amount: 120, Source: entities.PaymentSourceManual, Method: "check", PaidAt: time.Now().UTC()}
		uc.EXPECT().RecordPayment(gomock.Any(), "job-1", 120.0, gomock.Any(), "check").Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payment-history", bytes.NewBufferString(`{"amount":120,"payment_method":"check"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway record immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id/payment-history", h.UpdatePayment)

		uc.EXPECT().UpdatePayment(gomock.Any(), "job-1", "pay-gw", 50.0, gomock.Any(), "").Return(entities.PaymentRecord{}, usecase.ErrPaymentImmutable)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/payment-history", bytes.NewBufferString(`{"payment_id":"pay-gw","amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:job_id/payment-history", h.UpdatePayment)

		updated := entities.PaymentRecord{ID: "pay-1", JobID: "job-1", Amount: 80, Source: entities.PaymentSourceManual}
		uc.EXPECT().UpdatePayment(gomock.Any(), "job-1", "pay-1", 80.0, gomock.Any(), "cash").Return(updated, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/payment-history", bytes.NewBufferString(`{"payment_id":"pay-1","amount":80,"payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:job_id/payment-history", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "job-1", "missing").Return(usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/payment-history?paymentId=missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:job_id/payment-history", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "job-1", "pay-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/payment-history?paymentId=pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["deleted"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing to settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payments/mark-paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "job-1").Return(entities.PaymentRecord{}, usecase.ErrNothingToSettle)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payments/mark-paid", h.MarkPaid)

		settled := entities.PaymentRecord{ID: "pay-settle", JobID: "job-1", Amount: 120, Source: entities.PaymentSourceManual, Method: "Mark as Paid"}
		uc.EXPECT().MarkPaid(gomock.Any(), "job-1").Return(settled, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["amount"] != float64(120) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_MercadoPagoWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)

		created := entities.PaymentRecord{ID: "pay-gw", JobID: "job-1", Amount: 320, Source: entities.PaymentSourceGateway, GatewayTransactionID: "mp-123"}
		uc.EXPECT().RecordGatewayPayment(gomock.Any(), "mp-123").Return(created, nil)

		body := `{"action":"payment.updated","type":"payment","data":{"id":"mp-123"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query id fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)

		uc.EXPECT().RecordGatewayPayment(gomock.Any(), "mp-456").Return(entities.PaymentRecord{ID: "pay-gw2"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?id=mp-456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)

		uc.EXPECT().RecordGatewayPayment(gomock.Any(), "mp-789").Return(entities.PaymentRecord{}, usecase.ErrGatewayPaymentRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?id=mp-789", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentAmount, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidGatewayID, http.StatusBadRequest},
		{usecase.ErrPaymentExceedsBalance, http.StatusBadRequest},
		{usecase.ErrPaymentImmutable, http.StatusForbidden},
		{usecase.ErrNothingToSettle, http.StatusConflict},
		{usecase.ErrGatewayPaymentRejected, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
