package handlers

import (
	"context"
	"net/http"

	request "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/request"
	response "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/response"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotationHandler handles HTTP requests for quotations.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	logger  *zap.Logger
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, logger *zap.Logger) *QuotationHandler {
	return &QuotationHandler{usecase: uc, logger: logger.Named("quotation.handler")}
}

// CreateQuotation godoc
// @Summary      Create a quotation
// @Description  Freezes the requested catalog services and builds a draft quotation.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateQuotationRequest  true  "Quotation"
// @Success      201   {object}  response.QuotationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("[quotation][handler] invalid payload", zap.Error(err))
		respondError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotationView(view))
}

// GetQuotation godoc
// @Summary      Get a quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")
	view, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

// AddItem godoc
// @Summary      Add a catalog service to a quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Quotation ID"
// @Param        body  body      request.ServiceRefRequest  true  "Service"
// @Success      200   {object}  response.QuotationResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotations/{id}/items [post]
func (h *QuotationHandler) AddItem(c *gin.Context) {
	id := c.Param("id")
	var payload request.ServiceRefRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.AddItem(c.Request.Context(), id, payload.ToServiceRef())
	if err != nil {
		h.fail(c, "add item", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

// SetQuantity godoc
// @Summary      Change a line item quantity
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id          path      string                      true  "Quotation ID"
// @Param        service_id  path      string                      true  "Service ID"
// @Param        body        body      request.SetQuantityRequest  true  "Quantity"
// @Success      200         {object}  response.QuotationResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quotations/{id}/items/{service_id} [patch]
func (h *QuotationHandler) SetQuantity(c *gin.Context) {
	id := c.Param("id")
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.SetQuantity(c.Request.Context(), id, c.Param("service_id"), payload.Quantity)
	if err != nil {
		h.fail(c, "set quantity", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

// ApplyCondition godoc
// @Summary      Apply a commercial condition and payment method
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Quotation ID"
// @Param        body  body      request.ApplyConditionRequest  true  "Terms"
// @Success      200   {object}  response.QuotationResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /quotations/{id}/condition [put]
func (h *QuotationHandler) ApplyCondition(c *gin.Context) {
	id := c.Param("id")
	var payload request.ApplyConditionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.ApplyCondition(c.Request.Context(), id, payload.CommercialConditionID, payload.PaymentMethodID)
	if err != nil {
		h.fail(c, "apply condition", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

// ClearCondition godoc
// @Summary      Remove the commercial terms of a quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Router       /quotations/{id}/condition [delete]
func (h *QuotationHandler) ClearCondition(c *gin.Context) {
	h.transition(c, "clear condition", h.usecase.ClearCondition)
}

// SubmitQuotation godoc
// @Summary      Submit a draft quotation for approval
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/submit [patch]
func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	h.transition(c, "submit", h.usecase.Submit)
}

// ApproveQuotation godoc
// @Summary      Approve a pending quotation and freeze its price
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/approve [patch]
func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.transition(c, "approve", h.usecase.Approve)
}

// RejectQuotation godoc
// @Summary      Reject a pending quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/reject [patch]
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

func (h *QuotationHandler) transition(c *gin.Context, action string, run func(ctx context.Context, id string) (usecase.QuotationView, error)) {
	id := c.Param("id")
	view, err := run(c.Request.Context(), id)
	if err != nil {
		h.fail(c, action, id, err)
		return
	}
	h.logger.Info("[quotation][handler] "+action+" success", zap.String("quotation_id", id), zap.String("status", string(view.Quotation.Status)))
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

func (h *QuotationHandler) fail(c *gin.Context, action, id string, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[quotation][handler] "+action+" failed", zap.String("quotation_id", id), zap.Error(err))
	} else {
		h.logger.Info("[quotation][handler] "+action+" rejected", zap.String("quotation_id", id), zap.Error(err))
	}
	respondError(c, appErr)
}
