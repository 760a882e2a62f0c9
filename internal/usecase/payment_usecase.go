package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/balance"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuotationNotApproved           = errors.New("quotation not approved")
	ErrNothingPending                 = errors.New("quotation has no pending balance")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how payment requests are prepared for Mercado Pago.
//
// With MockMode the approval check and payload validation are relaxed so
// local environments can record payments against any quotation.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase records payments through the processor and reads the
// payment ledger.
type IPaymentUseCase interface {
	Record(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.Payment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	loader  quotationLoader
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	logger  *zap.Logger
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	quotations interfaces.IQuotationRepository,
	conditions interfaces.ICommercialConditionDirectory,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *PaymentUseCase {
	logger = logger.Named("payment.usecase")
	return &PaymentUseCase{
		repo:    repo,
		loader:  quotationLoader{repo: quotations, conditions: conditions, logger: logger},
		gateway: gateway,
		opts:    opts,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Record charges the quotation through the gateway and appends the result to
// the ledger. The amount is the payload transaction_amount when positive,
// otherwise the pending balance of the quotation.
func (u *PaymentUseCase) Record(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.Payment, error) {
	quotationID = strings.TrimSpace(quotationID)
	log := u.logger.With(zap.String("quotation_id", quotationID))
	log.Info("[payment][usecase] record start", zap.Int("payload_len", len(mpPayload)))

	if quotationID == "" {
		return entities.Payment{}, ErrInvalidQuotationID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Warn("[payment][usecase] invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.loader.load(ctx, quotationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if !u.opts.MockMode && !q.IsApproved() {
		log.Warn("[payment][usecase] quotation not approved", zap.String("status", string(q.Status)))
		return entities.Payment{}, ErrQuotationNotApproved
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Warn("[payment][usecase] payload is not an object", zap.Error(err))
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[payment][usecase] missing payment_method_id")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing or invalid payer")
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}

	amount, err := u.resolveAmount(ctx, q, reqMap)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Info("[payment][usecase] amount resolved", zap.String("amount", amount.StringFixed(2)))

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Cotización %s", q.Name)
	}
	reqMap["transaction_amount"] = amount.Round(2).InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	res, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.Payment{}, mapGatewayError(err)
	}

	status, err := entities.ParsePaymentStatus(res.Status)
	if err != nil {
		log.Warn("[payment][usecase] unknown provider status, recording as pending", zap.String("provider_status", res.Status))
		status = entities.PaymentStatusPending
	}
	id := strings.TrimSpace(res.ProviderID)
	if id == "" {
		id = uuid.NewString()
	}

	p := entities.Payment{
		ID:                 id,
		QuotationID:        q.ID,
		ClientID:           payerReference(reqMap),
		Amount:             amount,
		Status:             status,
		Method:             stringField(reqMap, "payment_method_id"),
		Concept:            stringField(reqMap, "description"),
		CreatedAt:          u.now(),
		ProviderPayloadRaw: res.Response,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	log.Info("[payment][usecase] record success",
		zap.String("payment_id", created.ID),
		zap.String("provider_status", res.Status),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func (u *PaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func (u *PaymentUseCase) resolveAmount(ctx context.Context, q quotation.Quotation, reqMap map[string]any) (decimal.Decimal, error) {
	if raw, ok := reqMap["transaction_amount"]; ok && raw != nil {
		amount, err := parseAmount(raw)
		if err != nil || !amount.IsPositive() {
			return decimal.Zero, ErrInvalidAmount
		}
		return amount, nil
	}

	payments, err := u.repo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list payments: %w", err)
	}
	// Production costs do not move the pending balance.
	b, err := balance.Calculate(q, payments, nil)
	if err != nil {
		return decimal.Zero, err
	}
	if !b.PendingBalance.IsPositive() {
		return decimal.Zero, ErrNothingPending
	}
	return b.PendingBalance, nil
}

func parseAmount(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	}
	return decimal.Zero, ErrInvalidAmount
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// payerReference is the payer email, or the payer id when there is no email.
func payerReference(m map[string]any) string {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return ""
	}
	if email := stringField(payer, "email"); email != "" {
		return email
	}
	if hasPayerID(payer) {
		return strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	}
	return ""
}

func hasNonEmptyString(m map[string]any, key string) bool {
	return stringField(m, key) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when
	// both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_mx@testuser.com"
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
