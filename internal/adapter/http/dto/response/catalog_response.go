package response

import "github.com/israelwong/prosocial-app-sub003/internal/usecase"

type CatalogServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Position    int    `json:"position"`
	ProfitType  string `json:"profit_type"`
	Cost        string `json:"cost"`
	Expense     string `json:"expense"`
	PublicPrice string `json:"public_price"`
	SystemPrice string `json:"system_price"`
}

func FromCatalogService(v usecase.CatalogServiceView) CatalogServiceResponse {
	e := v.Entry
	return CatalogServiceResponse{
		ID:          e.ID,
		Name:        e.Name,
		CategoryID:  e.CategoryID,
		Position:    e.Position,
		ProfitType:  string(e.ProfitType),
		Cost:        money(e.Cost),
		Expense:     money(e.Expense),
		PublicPrice: money(e.PublicPrice),
		SystemPrice: money(v.SystemPrice),
	}
}

func FromCatalogServices(vs []usecase.CatalogServiceView) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromCatalogService(v))
	}
	return out
}
