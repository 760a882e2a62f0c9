package handlers

import (
	"net/http"

	request "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/request"
	response "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/response"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConditionsHandler lists the commercial conditions offered to clients.
type ConditionsHandler struct {
	usecase usecase.IConditionsUseCase
	logger  *zap.Logger
}

func NewConditionsHandler(uc usecase.IConditionsUseCase, logger *zap.Logger) *ConditionsHandler {
	return &ConditionsHandler{usecase: uc, logger: logger.Named("conditions.handler")}
}

// ListConditions godoc
// @Summary      List active commercial conditions
// @Tags         commercial-conditions
// @Produce      json
// @Param        event_type  query     string  false  "Event type filter"
// @Success      200         {array}   response.CommercialConditionResponse
// @Failure      503         {object}  pkg.HTTPError
// @Router       /commercial-conditions [get]
func (h *ConditionsHandler) ListConditions(c *gin.Context) {
	conds, err := h.usecase.ListActive(c.Request.Context(), c.Query("event_type"))
	if err != nil {
		h.logger.Error("[conditions][handler] list failed", zap.Error(err))
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCommercialConditions(conds))
}

// CatalogHandler browses the live service catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, logger: logger.Named("catalog.handler")}
}

// ListServices godoc
// @Summary      List catalog services of a category
// @Description  Services in position order with the system price a new quotation would freeze.
// @Tags         catalog
// @Produce      json
// @Param        category_id  query     string  true  "Category id"
// @Success      200          {array}   response.CatalogServiceResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      503          {object}  pkg.HTTPError
// @Router       /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServicesByCategory(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[catalog][handler] list failed", zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogServices(services))
}

// GetService godoc
// @Summary      Get a catalog service
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  response.CatalogServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /catalog/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[catalog][handler] get failed", zap.String("service_id", c.Param("id")), zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogService(service))
}

// SimulationHandler previews payment plans.
type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
	logger  *zap.Logger
}

func NewSimulationHandler(uc usecase.ISimulationUseCase, logger *zap.Logger) *SimulationHandler {
	return &SimulationHandler{usecase: uc, logger: logger.Named("simulation.handler")}
}

// Simulate godoc
// @Summary      Simulate a payment plan
// @Description  Commission, installments and totals for an amount under a payment method.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        body  body      request.SimulationRequest  true  "Simulation"
// @Success      200   {object}  response.SimulationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /simulations [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var payload request.SimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("[simulation][handler] invalid payload", zap.Error(err))
		respondError(c, errInvalidRequest)
		return
	}

	result, err := h.usecase.Simulate(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[simulation][handler] simulate failed", zap.Error(err))
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSimulation(result))
}
