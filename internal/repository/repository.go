package repository

import (
	"errors"

	"saddleworks-backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository holds the authoritative sequence of orders and assigns
// their ids. Implementations must return copies; callers persist changes
// through Update.
type OrderRepository interface {
	ListAll() ([]models.Order, error)
	FindByID(id int) (*models.Order, error)
	Insert(order *models.Order) (*models.Order, error)
	Update(order *models.Order) error
}
