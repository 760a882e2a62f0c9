package routes

import (
	"github.com/israelwong/prosocial-app-sub003/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations           = "/quotations"
	PathSimulations          = "/simulations"
	PathCommercialConditions = "/commercial-conditions"
	PathPayments             = "/payments"
	PathCatalogServices      = "/catalog/services"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Quotation      *handlers.QuotationHandler
	Balance        *handlers.BalanceHandler
	Simulation     *handlers.SimulationHandler
	Conditions     *handlers.ConditionsHandler
	Payment        *handlers.PaymentHandler
	ProductionCost *handlers.ProductionCostHandler
	Catalog        *handlers.CatalogHandler
}

func addQuotationRoutes(rg *gin.RouterGroup, h Handlers) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.Quotation.CreateQuotation)
		quotations.GET("/:id", h.Quotation.GetQuotation)
		quotations.POST("/:id/items", h.Quotation.AddItem)
		quotations.PATCH("/:id/items/:service_id", h.Quotation.SetQuantity)
		quotations.PUT("/:id/condition", h.Quotation.ApplyCondition)
		quotations.DELETE("/:id/condition", h.Quotation.ClearCondition)
		quotations.PATCH("/:id/submit", h.Quotation.SubmitQuotation)
		quotations.PATCH("/:id/approve", h.Quotation.ApproveQuotation)
		quotations.PATCH("/:id/reject", h.Quotation.RejectQuotation)

		quotations.GET("/:id/balance", h.Balance.GetBalance)
		quotations.POST("/:id/costs", h.ProductionCost.CreateProductionCost)
		quotations.GET("/:id/costs", h.ProductionCost.ListProductionCosts)
	}

	rg.POST(PathSimulations, h.Simulation.Simulate)
	rg.GET(PathCommercialConditions, h.Conditions.ListConditions)

	catalog := rg.Group(PathCatalogServices)
	{
		catalog.GET("", h.Catalog.ListServices)
		catalog.GET("/:id", h.Catalog.GetService)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", h.Payment.CreatePayment)
		payments.GET("/:quotation_id", h.Payment.ListPayments)
	}
}
