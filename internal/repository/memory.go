package repository

import (
	"sync"

	"saddleworks-backend/internal/models"
)

// MemoryOrderRepository keeps orders in process memory. All state is lost on
// restart. The mutex guards the slice and the id counter; Gin serves
// requests concurrently.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

// NewMemoryOrderRepository returns a repository pre-populated with the given
// orders. The next id picks up after the highest seeded id.
func NewMemoryOrderRepository(seed ...models.Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{nextID: 1}
	for _, o := range seed {
		r.orders = append(r.orders, cloneOrder(o))
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
	}
	return r
}

func (r *MemoryOrderRepository) ListAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *MemoryOrderRepository) FindByID(id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			c := cloneOrder(o)
			return &c, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Insert assigns the next id, stores a copy, and returns the stored order.
func (r *MemoryOrderRepository) Insert(order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, cloneOrder(*order))
	return order, nil
}

func (r *MemoryOrderRepository) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = cloneOrder(*order)
			return nil
		}
	}
	return ErrOrderNotFound
}

// cloneOrder copies the order including its notes slice, so stored state
// never aliases caller-held values.
func cloneOrder(o models.Order) models.Order {
	notes := make([]models.OrderNote, len(o.Notes))
	copy(notes, o.Notes)
	o.Notes = notes
	if o.FittingFile != nil {
		f := *o.FittingFile
		o.FittingFile = &f
	}
	return o
}

var _ OrderRepository = (*MemoryOrderRepository)(nil)
