package models

type CreateOrderRequest struct {
	CustomerName        string `form:"customerName"`
	CustomerEmail       string `form:"customerEmail"`
	SaddleID            string `form:"saddleId"`
	BikeShopName        string `form:"bikeShopName"`
	SpecialRequirements string `form:"specialRequirements"`
}

// UpdateOrderStatusRequest carries a partial update. Pointers distinguish
// "not supplied" from zero values; progress 0 is a valid update.
type UpdateOrderStatusRequest struct {
	Status   *string `json:"status,omitempty"`
	Progress *int    `json:"progress,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
