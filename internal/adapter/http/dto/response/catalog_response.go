package response

import (
	"fotoeventos/internal/domain/entities"
)

type CatalogServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Currency    string  `json:"currency"`
}

func FromCatalogService(svc entities.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		BasePrice:   svc.BasePrice,
		Currency:    svc.Currency,
	}
}

func FromCatalogServices(services []entities.CatalogService) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, FromCatalogService(svc))
	}
	return out
}
