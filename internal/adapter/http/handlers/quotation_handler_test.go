package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/adapter/http/handlers/mocks"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/pricing"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func quotationRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuotationUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/v1/quotations", h.CreateQuotation)
	r.GET("/v1/quotations/:id", h.GetQuotation)
	r.POST("/v1/quotations/:id/items", h.AddItem)
	r.PATCH("/v1/quotations/:id/items/:service_id", h.SetQuantity)
	r.PUT("/v1/quotations/:id/condition", h.ApplyCondition)
	r.DELETE("/v1/quotations/:id/condition", h.ClearCondition)
	r.PATCH("/v1/quotations/:id/submit", h.SubmitQuotation)
	r.PATCH("/v1/quotations/:id/approve", h.ApproveQuotation)
	r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func view(id string, status entities.QuotationStatus) usecase.QuotationView {
	return usecase.QuotationView{
		Quotation: quotation.Quotation{ID: id, Name: "Boda Ana", Status: status},
		Totals:    quotation.Totals{FinalPrice: decimal.RequireFromString("1800.9")},
	}
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := quotationRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing services", func(t *testing.T) {
		r, _ := quotationRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotations", `{"name":"Boda Ana","services":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r, _ := quotationRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotations", `{"name":"Boda Ana","services":[{"service_id":"foto","quantity":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.QuotationView{}, pricing.ErrServiceNotFound)

		w := serve(r, http.MethodPost, "/v1/quotations", `{"name":"Boda Ana","services":[{"service_id":"foto","quantity":1}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateQuotationInput{
			Name:     "Boda Ana",
			Services: []pricing.ServiceRef{{ServiceID: "foto", Quantity: 2}},
		}).Return(view("q-1", entities.QuotationStatusDraft), nil)

		w := serve(r, http.MethodPost, "/v1/quotations", `{"name":"Boda Ana","services":[{"service_id":"foto","quantity":2}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "q-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body %v", body)
		}
		totals, _ := body["totals"].(map[string]any)
		if totals["final_price"] != "1800.90" {
			t.Fatalf("expected money string, got %v", totals["final_price"])
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Get(gomock.Any(), "missing").Return(usecase.QuotationView{}, usecase.ErrQuotationNotFound)

		w := serve(r, http.MethodGet, "/v1/quotations/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Get(gomock.Any(), "q-1").Return(view("q-1", entities.QuotationStatusPending), nil)

		w := serve(r, http.MethodGet, "/v1/quotations/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Items(t *testing.T) {
	t.Run("add item on locked quotation", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().AddItem(gomock.Any(), "q-1", pricing.ServiceRef{ServiceID: "album", Quantity: 1}).
			Return(usecase.QuotationView{}, quotation.ErrQuotationLocked)

		w := serve(r, http.MethodPost, "/v1/quotations/q-1/items", `{"service_id":" album ","quantity":1}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("set quantity", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().SetQuantity(gomock.Any(), "q-1", "foto", 3).Return(view("q-1", entities.QuotationStatusDraft), nil)

		w := serve(r, http.MethodPatch, "/v1/quotations/q-1/items/foto", `{"quantity":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("set quantity unknown line", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().SetQuantity(gomock.Any(), "q-1", "dron", 1).Return(usecase.QuotationView{}, quotation.ErrLineItemNotFound)

		w := serve(r, http.MethodPatch, "/v1/quotations/q-1/items/dron", `{"quantity":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Condition(t *testing.T) {
	t.Run("missing condition id", func(t *testing.T) {
		r, _ := quotationRouter(t)
		w := serve(r, http.MethodPut, "/v1/quotations/q-1/condition", `{"payment_method_id":"card"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incompatible method", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().ApplyCondition(gomock.Any(), "q-1", "cond-1", "cash").Return(usecase.QuotationView{}, quotation.ErrIncompatibleMethod)

		w := serve(r, http.MethodPut, "/v1/quotations/q-1/condition", `{"commercial_condition_id":"cond-1","payment_method_id":"cash"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().ClearCondition(gomock.Any(), "q-1").Return(view("q-1", entities.QuotationStatusDraft), nil)

		w := serve(r, http.MethodDelete, "/v1/quotations/q-1/condition", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Transitions(t *testing.T) {
	t.Run("submit", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "q-1").Return(view("q-1", entities.QuotationStatusPending), nil)

		w := serve(r, http.MethodPatch, "/v1/quotations/q-1/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve empty quotation", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "q-1").Return(usecase.QuotationView{}, quotation.ErrEmptyQuotation)

		w := serve(r, http.MethodPatch, "/v1/quotations/q-1/approve", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("reject approved", func(t *testing.T) {
		r, uc := quotationRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "q-1").Return(usecase.QuotationView{}, quotation.ErrInvalidTransition)

		w := serve(r, http.MethodPatch, "/v1/quotations/q-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
