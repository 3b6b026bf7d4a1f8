package models

import "time"

type OrderResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
