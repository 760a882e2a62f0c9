package handlers

import (
	"net/http"

	request "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/request"
	response "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/response"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductionCostHandler records and lists the production costs of a quotation.
type ProductionCostHandler struct {
	usecase usecase.IProductionCostUseCase
	logger  *zap.Logger
}

func NewProductionCostHandler(uc usecase.IProductionCostUseCase, logger *zap.Logger) *ProductionCostHandler {
	return &ProductionCostHandler{usecase: uc, logger: logger.Named("production_cost.handler")}
}

// CreateProductionCost godoc
// @Summary      Record a production cost
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        id    path      string                               true  "Quotation ID"
// @Param        body  body      request.CreateProductionCostRequest  true  "Cost"
// @Success      201   {object}  response.ProductionCostResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotations/{id}/costs [post]
func (h *ProductionCostHandler) CreateProductionCost(c *gin.Context) {
	quotationID := c.Param("id")
	var payload request.CreateProductionCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("[production_cost][handler] invalid payload", zap.Error(err))
		respondError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(quotationID))
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[production_cost][handler] create failed", zap.String("quotation_id", quotationID), zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, response.FromProductionCost(created))
}

// ListProductionCosts godoc
// @Summary      List the production costs of a quotation
// @Tags         costs
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {array}   response.ProductionCostResponse
// @Router       /quotations/{id}/costs [get]
func (h *ProductionCostHandler) ListProductionCosts(c *gin.Context) {
	quotationID := c.Param("id")
	costs, err := h.usecase.ListByQuotationID(c.Request.Context(), quotationID)
	if err != nil {
		h.logger.Error("[production_cost][handler] list failed", zap.String("quotation_id", quotationID), zap.Error(err))
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProductionCosts(costs))
}

// BalanceHandler exposes the financial position of a quotation.
type BalanceHandler struct {
	usecase usecase.IBalanceUseCase
	logger  *zap.Logger
}

func NewBalanceHandler(uc usecase.IBalanceUseCase, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{usecase: uc, logger: logger.Named("balance.handler")}
}

// GetBalance godoc
// @Summary      Get the balance of a quotation
// @Description  Totals paid, pending, production costs, profit and the progress band.
// @Tags         balance
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.BalanceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	quotationID := c.Param("id")
	report, err := h.usecase.GetBalance(c.Request.Context(), quotationID)
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[balance][handler] get failed", zap.String("quotation_id", quotationID), zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromBalanceReport(report))
}
