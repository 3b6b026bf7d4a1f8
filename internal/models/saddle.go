package models

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type SaddleOffering struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}
