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
	"inspect_billing/internal/domain/pricing"
	"inspect_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func pendingAddon() entities.RequestedAddon {
	return entities.RequestedAddon{
		ID:          "req-1",
		JobID:       "job-1",
		ServiceRef:  "svc-a",
		AddonName:   "Sewer Scope",
		AddFee:      75,
		AddHours:    1.5,
		Status:      entities.AddonRequestStatusPending,
		RequestedAt: time.Now().UTC(),
	}
}

func TestAddonRequestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/addon-requests", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/addon-requests", bytes.NewBufferString(`{"service_id":"svc-a"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/addon-requests", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), "missing", "svc-a", "Sewer Scope", 75.0, 1.5).Return(entities.RequestedAddon{}, usecase.ErrJobNotFound)

		body := `{"service_id":"svc-a","addon_name":"Sewer Scope","add_fee":75,"add_hours":1.5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/missing/addon-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/addon-requests", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), "job-1", "svc-a", "Sewer Scope", 75.0, 1.5).Return(pendingAddon(), nil)

		body := `{"service_id":"svc-a","addon_name":"Sewer Scope","add_fee":75,"add_hours":1.5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/addon-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["request_id"] != "req-1" || res["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAddonRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAddonRequestUseCase(ctrl)
	h := NewAddonRequestHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs/:job_id/addon-requests", h.List)

	uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.RequestedAddon{pendingAddon()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/addon-requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 1 || res[0]["request_id"] != "req-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAddonRequestHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/addon-requests/:request_id", h.Process)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/addon-requests/req-1", bytes.NewBufferString(`{"action":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/addon-requests/:request_id", h.Process)

		approved := pendingAddon()
		approved.Status = entities.AddonRequestStatusApproved
		job := entities.Job{
			ID:        "job-1",
			CompanyID: "co-1",
			Items: []entities.PricingItem{
				{Kind: entities.ItemKindService, ServiceRef: "svc-a", Price: 300, OriginalPrice: 300},
				{Kind: entities.ItemKindAddon, ServiceRef: "svc-a", AddonName: "Sewer Scope", Price: 75, OriginalPrice: 75, Hours: 1.5},
			},
		}
		uc.EXPECT().Approve(gomock.Any(), "job-1", "req-1").Return(approved, job, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/addon-requests/req-1", bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		reqBody, _ := res["request"].(map[string]any)
		if reqBody["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if res["job"] == nil {
			t.Fatalf("expected updated job in body: %s", w.Body.String())
		}
	})

	t.Run("approve already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/addon-requests/:request_id", h.Process)

		uc.EXPECT().Approve(gomock.Any(), "job-1", "req-1").Return(entities.RequestedAddon{}, entities.Job{}, pricing.ErrRequestAlreadyResolved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/addon-requests/req-1", bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAddonRequestUseCase(ctrl)
		h := NewAddonRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/addon-requests/:request_id", h.Process)

		rejected := pendingAddon()
		rejected.Status = entities.AddonRequestStatusRejected
		uc.EXPECT().Reject(gomock.Any(), "job-1", "req-1").Return(rejected, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/addon-requests/req-1", bytes.NewBufferString(`{"action":"reject"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		reqBody, _ := res["request"].(map[string]any)
		if reqBody["status"] != "rejected" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapAddonError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAddonRequest, http.StatusBadRequest},
		{usecase.ErrInvalidJobID, http.StatusBadRequest},
		{pricing.ErrRequestAlreadyResolved, http.StatusConflict},
		{pricing.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrAddonRequestNotFound, http.StatusNotFound},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrJobConflict, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapAddonError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
