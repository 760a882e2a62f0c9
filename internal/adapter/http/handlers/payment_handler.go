package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/response"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for quotation payments.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.Named("payment.handler")}
}

// CreatePayment godoc
// @Summary      Pay an approved quotation through Mercado Pago
// @Description  Accepts a raw Mercado Pago payment body or one wrapped as {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        quotation_id  path      string                        true  "Quotation ID"
// @Param        body  body      request.PaymentCreateRequest  true  "Mercado Pago payload"
// @Success      201   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /payments/{quotation_id} [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	h.logger.Info("[payment][handler] create start", zap.String("quotation_id", quotationID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("[payment][handler] invalid payload", zap.String("quotation_id", quotationID), zap.Error(err))
			respondError(c, errInvalidRequest)
			return
		}
		h.logger.Warn("[payment][handler] payload invalid in mock mode; using empty payload", zap.String("quotation_id", quotationID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Record(c.Request.Context(), quotationID, mpPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[payment][handler] create failed", zap.String("quotation_id", quotationID), zap.Error(err))
		} else {
			h.logger.Info("[payment][handler] create rejected", zap.String("quotation_id", quotationID), zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	h.logger.Info("[payment][handler] create success",
		zap.String("quotation_id", quotationID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments godoc
// @Summary      List the payments recorded against a quotation
// @Tags         payments
// @Produce      json
// @Param        quotation_id  path      string  true  "Quotation ID"
// @Success      200  {array}   response.PaymentResponse
// @Router       /payments/{quotation_id} [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), quotationID)
	if err != nil {
		h.logger.Error("[payment][handler] list failed", zap.String("quotation_id", quotationID), zap.Error(err))
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
