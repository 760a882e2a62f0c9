package handlers

import (
	"errors"
	"net/http"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/pricing"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/simulator"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"
	"github.com/israelwong/prosocial-app-sub003/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidQuotationName),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCostName),
		errors.Is(err, simulator.ErrInvalidBaseAmount),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, quotation.ErrInvalidQuantity):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommercialConditionNotFound):
		return pkg.NewDomainErrorSimple("COMMERCIAL_CONDITION_NOT_FOUND", "Commercial condition not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogServiceNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_SERVICE_NOT_FOUND", "Catalog service not found", http.StatusNotFound)
	case errors.Is(err, quotation.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoServices):
		return pkg.NewDomainErrorSimple("NO_SERVICES", "No services to quote", http.StatusUnprocessableEntity)
	case errors.Is(err, quotation.ErrIncompatibleMethod):
		return pkg.NewDomainErrorSimple("INCOMPATIBLE_PAYMENT_METHOD", "Payment method not eligible for commercial condition", http.StatusUnprocessableEntity)
	case errors.Is(err, quotation.ErrInvalidDiscount),
		errors.Is(err, quotation.ErrInvalidAdvancePct),
		errors.Is(err, quotation.ErrInvalidCommission):
		return pkg.NewDomainErrorSimple("INVALID_COMMERCIAL_TERMS", "Commercial condition or payment method out of range", http.StatusUnprocessableEntity)
	case errors.Is(err, quotation.ErrEmptyQuotation):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTATION", "Quotation has no line items", http.StatusUnprocessableEntity)
	case errors.Is(err, quotation.ErrQuotationLocked):
		return pkg.NewDomainErrorSimple("QUOTATION_LOCKED", "Quotation can no longer be edited", http.StatusConflict)
	case errors.Is(err, quotation.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogNotConfigured):
		return pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Catalog store not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuotationNotApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_APPROVED", "Quotation not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingPending):
		return pkg.NewDomainErrorSimple("NOTHING_PENDING", "Quotation has no pending balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return mapUseCaseError(err)
	}
}
