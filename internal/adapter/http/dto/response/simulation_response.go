package response

import "github.com/israelwong/prosocial-app-sub003/internal/usecase"

type SimulationResponse struct {
	PaymentMethod         PaymentMethodResponse        `json:"payment_method"`
	CommercialCondition   *CommercialConditionResponse `json:"commercial_condition,omitempty"`
	Discount              string                       `json:"discount"`
	NetAmount             string                       `json:"net_amount"`
	Advance               string                       `json:"advance"`
	Pending               string                       `json:"pending"`
	Commission            string                       `json:"commission"`
	InstallmentCommission string                       `json:"installment_commission"`
	InstallmentCount      int                          `json:"installment_count"`
	PerInstallmentAmount  string                       `json:"per_installment_amount"`
	TotalPayable          string                       `json:"total_payable"`
}

func FromSimulation(r usecase.SimulationResult) SimulationResponse {
	s := r.Simulation
	res := SimulationResponse{
		PaymentMethod:         FromPaymentMethod(r.Method),
		Discount:              money(s.Discount),
		NetAmount:             money(s.NetAmount),
		Advance:               money(s.Advance),
		Pending:               money(s.Pending),
		Commission:            money(s.Commission),
		InstallmentCommission: money(s.InstallmentCommission),
		InstallmentCount:      s.InstallmentCount,
		PerInstallmentAmount:  money(s.PerInstallmentAmount),
		TotalPayable:          money(s.TotalPayable),
	}
	if r.Condition != nil {
		c := FromCommercialCondition(*r.Condition)
		res.CommercialCondition = &c
	}
	return res
}
