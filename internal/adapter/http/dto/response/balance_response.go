package response

import "github.com/israelwong/prosocial-app-sub003/internal/usecase"

type LedgerWarningResponse struct {
	Kind   string `json:"kind"`
	RowID  string `json:"row_id"`
	Reason string `json:"reason"`
}

type BalanceResponse struct {
	QuotationID         string                  `json:"quotation_id"`
	Status              string                  `json:"status"`
	FinalPrice          string                  `json:"final_price"`
	EffectiveTotal      string                  `json:"effective_total"`
	TotalPaid           string                  `json:"total_paid"`
	PendingBalance      string                  `json:"pending_balance"`
	PaymentProgressPct  string                  `json:"payment_progress_pct"`
	OperatingCost       string                  `json:"operating_cost"`
	ProductionCostTotal string                  `json:"production_cost_total"`
	FinalProfit         string                  `json:"final_profit"`
	Band                string                  `json:"band"`
	Overpaid            bool                    `json:"overpaid"`
	MalformedRows       int                     `json:"malformed_rows"`
	Warnings            []LedgerWarningResponse `json:"warnings"`
}

func FromBalanceReport(r usecase.BalanceReport) BalanceResponse {
	b := r.Balance
	res := BalanceResponse{
		QuotationID:         b.QuotationID,
		Status:              string(r.Quotation.Status),
		FinalPrice:          money(r.Totals.FinalPrice),
		EffectiveTotal:      money(b.EffectiveTotal),
		TotalPaid:           money(b.TotalPaid),
		PendingBalance:      money(b.PendingBalance),
		PaymentProgressPct:  money(b.PaymentProgressPct),
		OperatingCost:       money(b.OperatingCost),
		ProductionCostTotal: money(b.ProductionCostTotal),
		FinalProfit:         money(b.FinalProfit),
		Band:                string(b.Band),
		Overpaid:            b.Overpaid(),
		MalformedRows:       b.MalformedRows(),
		Warnings:            make([]LedgerWarningResponse, 0, len(b.Warnings)),
	}
	for _, w := range b.Warnings {
		res.Warnings = append(res.Warnings, LedgerWarningResponse{Kind: string(w.Kind), RowID: w.RowID, Reason: w.Reason})
	}
	return res
}
