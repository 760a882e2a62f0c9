package response

import (
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"
)

type LineItemResponse struct {
	ServiceID   string `json:"service_id"`
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name"`
	ProfitType  string `json:"profit_type"`
	Position    int    `json:"position"`
	UnitPrice   string `json:"unit_price"`
	UnitCost    string `json:"unit_cost"`
	UnitExpense string `json:"unit_expense"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type PaymentMethodResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	InstallmentCount         int    `json:"installment_count"`
	BaseCommissionPct        string `json:"base_commission_pct"`
	FixedCommission          string `json:"fixed_commission"`
	InstallmentCommissionPct string `json:"installment_commission_pct"`
}

type CommercialConditionResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	DiscountPct    string                  `json:"discount_pct"`
	AdvancePct     string                  `json:"advance_pct"`
	EventType      string                  `json:"event_type,omitempty"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

type TotalsResponse struct {
	Subtotal              string `json:"subtotal"`
	DiscountAmount        string `json:"discount_amount"`
	FinalPrice            string `json:"final_price"`
	InstallmentCount      int    `json:"installment_count"`
	InstallmentPayment    string `json:"installment_payment"`
	AdvanceAmount         string `json:"advance_amount"`
	PendingAfterAdvance   string `json:"pending_after_advance"`
	ProcessorCommission   string `json:"processor_commission"`
	InstallmentCommission string `json:"installment_commission"`
	SalesCommission       string `json:"sales_commission"`
	OperatingCost         string `json:"operating_cost"`
	SystemProfit          string `json:"system_profit"`
	SaleProfit            string `json:"sale_profit"`
	ProfitLossDelta       string `json:"profit_loss_delta"`
	ProfitCode            string `json:"profit_code"`
}

type QuotationResponse struct {
	ID                  string                       `json:"id"`
	Name                string                       `json:"name"`
	EventID             string                       `json:"event_id,omitempty"`
	Status              string                       `json:"status"`
	LineItems           []LineItemResponse           `json:"line_items"`
	CommercialCondition *CommercialConditionResponse `json:"commercial_condition,omitempty"`
	PaymentMethod       *PaymentMethodResponse       `json:"payment_method,omitempty"`
	DiscountAtFreeze    *string                      `json:"discount_at_freeze,omitempty"`
	SalesCommissionPct  string                       `json:"sales_commission_pct"`
	Totals              TotalsResponse               `json:"totals"`
	SkippedServiceIDs   []string                     `json:"skipped_service_ids,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

func FromQuotationView(v usecase.QuotationView) QuotationResponse {
	res := FromQuotation(v.Quotation, v.Totals)
	res.SkippedServiceIDs = v.SkippedServiceIDs
	return res
}

func FromQuotation(q quotation.Quotation, t quotation.Totals) QuotationResponse {
	items := q.OrderedLineItems()
	res := QuotationResponse{
		ID:                 q.ID,
		Name:               q.Name,
		EventID:            q.EventID,
		Status:             string(q.Status),
		LineItems:          make([]LineItemResponse, 0, len(items)),
		DiscountAtFreeze:   optionalMoney(q.DiscountAtFreeze()),
		SalesCommissionPct: money(q.SalesCommissionPct),
		Totals:             FromTotals(t),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
	for _, li := range items {
		res.LineItems = append(res.LineItems, LineItemResponse{
			ServiceID:   li.ServiceID,
			CategoryID:  li.CategoryID,
			Name:        li.Name,
			ProfitType:  string(li.ProfitType),
			Position:    li.Position,
			UnitPrice:   money(li.UnitPrice),
			UnitCost:    money(li.UnitCost),
			UnitExpense: money(li.UnitExpense),
			Quantity:    li.Quantity,
			Subtotal:    money(li.Subtotal()),
		})
	}
	if c := q.Condition(); c != nil {
		cr := FromCommercialCondition(*c)
		res.CommercialCondition = &cr
	}
	if m := q.Method(); m != nil {
		mr := FromPaymentMethod(*m)
		res.PaymentMethod = &mr
	}
	return res
}

func FromTotals(t quotation.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:              money(t.Subtotal),
		DiscountAmount:        money(t.DiscountAmount),
		FinalPrice:            money(t.FinalPrice),
		InstallmentCount:      t.InstallmentCount,
		InstallmentPayment:    money(t.InstallmentPayment),
		AdvanceAmount:         money(t.AdvanceAmount),
		PendingAfterAdvance:   money(t.PendingAfterAdvance),
		ProcessorCommission:   money(t.ProcessorCommission),
		InstallmentCommission: money(t.InstallmentCommission),
		SalesCommission:       money(t.SalesCommission),
		OperatingCost:         money(t.OperatingCost),
		SystemProfit:          money(t.SystemProfit),
		SaleProfit:            money(t.SaleProfit),
		ProfitLossDelta:       money(t.ProfitLossDelta),
		ProfitCode:            t.Code,
	}
}

func FromCommercialCondition(c entities.CommercialCondition) CommercialConditionResponse {
	res := CommercialConditionResponse{
		ID:             c.ID,
		Name:           c.Name,
		DiscountPct:    money(c.DiscountPct),
		AdvancePct:     money(c.AdvancePct),
		EventType:      c.EventType,
		PaymentMethods: make([]PaymentMethodResponse, 0, len(c.PaymentMethods)),
	}
	for _, m := range c.PaymentMethods {
		res.PaymentMethods = append(res.PaymentMethods, FromPaymentMethod(m))
	}
	return res
}

func FromCommercialConditions(cs []entities.CommercialCondition) []CommercialConditionResponse {
	out := make([]CommercialConditionResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCommercialCondition(c))
	}
	return out
}

func FromPaymentMethod(m entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:                       m.ID,
		Name:                     m.Name,
		InstallmentCount:         m.InstallmentCount,
		BaseCommissionPct:        money(m.BaseCommissionPct),
		FixedCommission:          money(m.FixedCommission),
		InstallmentCommissionPct: money(m.InstallmentCommissionPct),
	}
}
