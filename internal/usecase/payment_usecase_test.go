package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"
	mock_interfaces "github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func approvedQuotation(t *testing.T) quotation.Quotation {
	t.Helper()
	q, err := pendingQuotation(t).Approve()
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	return q
}

type paymentMocks struct {
	repo       *mock_interfaces.MockIPaymentRepository
	quotations *mock_interfaces.MockIQuotationRepository
	gateway    *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:       mock_interfaces.NewMockIPaymentRepository(ctrl),
		quotations: mock_interfaces.NewMockIQuotationRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	dir := mock_interfaces.NewMockICommercialConditionDirectory(ctrl)
	return NewPaymentUseCase(m.repo, m.quotations, dir, m.gateway, opts, zap.NewNop()), m
}

const validPayload = `{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`

func TestPaymentUseCase_Record_Validations(t *testing.T) {
	t.Run("empty quotation id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{}, zap.NewNop())
		_, err := uc.Record(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{}, zap.NewNop())
		_, err := uc.Record(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{}, zap.NewNop())
		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{}, zap.NewNop())
		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_QuotationChecks(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotation.Quotation{}, errors.New("db"))

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if err == nil || err.Error() != "load quotation q-1: db" {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotation.Quotation{}, nil)

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuotation(t), nil)

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrQuotationNotApproved) {
			t.Fatalf("expected ErrQuotationNotApproved, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_PayloadValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{name: "missing payment_method_id", payload: `{"payer":{"email":"x@test.com"}}`, want: ErrInvalidMPPayload},
		{name: "missing payer", payload: `{"payment_method_id":"visa"}`, want: ErrInvalidMPPayload},
		{name: "not an object", payload: `[1,2]`, want: ErrInvalidMPPayload},
		{name: "zero amount", payload: `{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":0}`, want: ErrInvalidAmount},
		{name: "garbage amount", payload: `{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":"abc"}`, want: ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentOptions{})
			m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)

			_, err := uc.Record(context.Background(), "q-1", json.RawMessage(tc.payload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_Record_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentOptions{})
			m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{}, tc.err)

			_, err := uc.Record(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":100}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{}, errors.New("boom"))

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":100}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_Success(t *testing.T) {
	statuses := []struct {
		provider string
		want     entities.PaymentStatus
	}{
		{provider: "approved", want: entities.PaymentStatusPaid},
		{provider: "rejected", want: entities.PaymentStatusFailed},
		{provider: "in_process", want: entities.PaymentStatusPending},
		{provider: "something_new", want: entities.PaymentStatusPending},
	}

	for _, tc := range statuses {
		t.Run("status "+tc.provider, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentOptions{})
			m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{ProviderID: "mp-1", Status: tc.provider, Response: json.RawMessage(`{"id":1}`)}, nil)
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})

			p, err := uc.Record(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":"250.50"}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, p.Status)
			}
			if p.ID != "mp-1" || p.ClientID != "x@test.com" || p.Method != "visa" || !p.Amount.Equal(dec("250.50")) {
				t.Fatalf("unexpected payment: %+v", p)
			}
		})
	}

	t.Run("amount defaults to pending balance", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
		m.repo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Payment{
			{ID: "p1", QuotationID: "q-1", Amount: dec("300"), Status: entities.PaymentStatusPaid},
		}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (interfaces.GatewayPayment, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}
			if req["transaction_amount"] != float64(700) {
				t.Fatalf("expected transaction_amount 700, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "q-1" || req["description"] != "Cotización Boda Ana" {
				t.Fatalf("unexpected enrichment: %v", req)
			}
			return interfaces.GatewayPayment{ProviderID: "mp-2", Status: "approved"}, nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		p, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Amount.Equal(dec("700")) {
			t.Fatalf("expected 700, got %s", p.Amount)
		}
	})

	t.Run("nothing pending", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
		m.repo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Payment{
			{ID: "p1", QuotationID: "q-1", Amount: dec("1000"), Status: entities.PaymentStatusPaid},
		}, nil)

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(validPayload))
		if !errors.Is(err, ErrNothingPending) {
			t.Fatalf("expected ErrNothingPending, got %v", err)
		}
	})

	t.Run("mock mode accepts draft and empty payload", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{MockMode: true})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuotation(t), nil)
		m.repo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{Status: "approved"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		p, err := uc.Record(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || !p.Amount.Equal(dec("1000")) {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(t), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{ProviderID: "mp-1", Status: "approved"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))

		_, err := uc.Record(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":10}`))
		if err == nil || err.Error() != "create payment: db" {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestPaymentUseCase_PayerHelpers(t *testing.T) {
	t.Run("sandbox default email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{AccessToken: "TEST-123"}, zap.NewNop())
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "test_user_mx@testuser.com" || payer["type"] != "customer" {
			t.Fatalf("unexpected payer %v", payer)
		}
	})

	t.Run("production keeps payer empty", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{AccessToken: "APP_USR-1"}, zap.NewNop())
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		if hasPayer(m) {
			t.Fatalf("expected no payer, got %v", m["payer"])
		}
	})

	t.Run("sandbox user id maps to email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{AccessToken: "TEST-1", TestPayerUserID: "42", TestPayerEmail: "sandbox@test.com"}, zap.NewNop())
		m := map[string]any{"payer": map[string]any{"id": float64(42)}}
		uc.normalizeSandboxPayerFromUserID(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email, got %v", payer)
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("payer reference", func(t *testing.T) {
		if got := payerReference(map[string]any{"payer": map[string]any{"id": "77"}}); got != "77" {
			t.Fatalf("expected 77, got %q", got)
		}
		if got := payerReference(map[string]any{}); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}

func TestPaymentUseCase_ListByQuotationID(t *testing.T) {
	uc, m := newPaymentUseCase(t, PaymentOptions{})
	if _, err := uc.ListByQuotationID(context.Background(), ""); !errors.Is(err, ErrInvalidQuotationID) {
		t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
	}
	m.repo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Payment{{ID: "p1"}}, nil)
	res, err := uc.ListByQuotationID(context.Background(), "q-1")
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected result err=%v res=%v", err, res)
	}
}
