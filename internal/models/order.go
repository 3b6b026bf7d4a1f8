package models

import "time"

// Statuses observed over an order's lifetime. Updates accept any string,
// so these are the conventional values, not a closed set.
const (
	StatusProcessing = "Processing"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
)

// DefaultBikeShopName is recorded when a customer orders without a shop.
const DefaultBikeShopName = "Direct Customer"

// EstimatedLeadTime is added to the order date to produce the estimated
// completion date.
const EstimatedLeadTime = 14 * 24 * time.Hour

type OrderNote struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Order is a customer's request for a customized saddle. Saddle holds a
// value copy of the catalog offering taken at creation time; later catalog
// changes never affect existing orders.
type Order struct {
	ID                  int            `json:"id"`
	OrderNumber         string         `json:"orderNumber"`
	CustomerName        string         `json:"customerName"`
	CustomerEmail       string         `json:"customerEmail"`
	BikeShopName        string         `json:"bikeShopName"`
	Saddle              SaddleOffering `json:"saddle"`
	FittingFile         *string        `json:"fittingFile"`
	SpecialRequirements string         `json:"specialRequirements"`
	Status              string         `json:"status"`
	OrderDate           time.Time      `json:"orderDate"`
	EstimatedCompletion time.Time      `json:"estimatedCompletion"`
	Progress            int            `json:"progress"`
	Notes               []OrderNote    `json:"notes"`
}
