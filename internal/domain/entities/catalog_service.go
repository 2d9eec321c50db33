package entities

// CatalogService is a bookable service from the company catalog.
//
// The catalog is read-only input for this service: quote creation validates
// every line item's catalog reference and base price against it.
//
// Storage model (DynamoDB):
//   - PK: id
type CatalogService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Currency    string  `json:"currency"`
	Active      bool    `json:"active"`
}
