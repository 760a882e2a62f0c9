package request

import (
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/pricing"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"
)

type ServiceRefRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func (r ServiceRefRequest) ToServiceRef() pricing.ServiceRef {
	return pricing.ServiceRef{ServiceID: strings.TrimSpace(r.ServiceID), Quantity: r.Quantity}
}

// CreateQuotationRequest builds a draft quotation from catalog services.
type CreateQuotationRequest struct {
	Name                  string              `json:"name" binding:"required"`
	EventID               string              `json:"event_id"`
	EventType             string              `json:"event_type"`
	Services              []ServiceRefRequest `json:"services" binding:"required,min=1,dive"`
	SkipMissing           bool                `json:"skip_missing"`
	CommercialConditionID string              `json:"commercial_condition_id"`
	PaymentMethodID       string              `json:"payment_method_id"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	refs := make([]pricing.ServiceRef, 0, len(r.Services))
	for _, s := range r.Services {
		refs = append(refs, s.ToServiceRef())
	}
	return usecase.CreateQuotationInput{
		Name:                  r.Name,
		EventID:               strings.TrimSpace(r.EventID),
		EventType:             strings.TrimSpace(r.EventType),
		Services:              refs,
		SkipMissing:           r.SkipMissing,
		CommercialConditionID: strings.TrimSpace(r.CommercialConditionID),
		PaymentMethodID:       strings.TrimSpace(r.PaymentMethodID),
	}
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type ApplyConditionRequest struct {
	CommercialConditionID string `json:"commercial_condition_id" binding:"required"`
	PaymentMethodID       string `json:"payment_method_id"`
}
