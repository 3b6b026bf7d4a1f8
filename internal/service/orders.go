package service

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"saddleworks-backend/internal/catalog"
	"saddleworks-backend/internal/models"
	"saddleworks-backend/internal/repository"
)

// OrderService owns order creation and lifecycle updates. The repository is
// injected so tests can run against isolated in-memory instances.
type OrderService struct {
	catalog *catalog.Catalog
	repo    repository.OrderRepository

	// mu serializes update read-modify-write sequences and note id
	// generation across concurrent requests.
	mu         sync.Mutex
	lastNoteID int64
}

func NewOrderService(cat *catalog.Catalog, repo repository.OrderRepository) *OrderService {
	return &OrderService{catalog: cat, repo: repo}
}

type CreateOrderInput struct {
	CustomerName        string
	CustomerEmail       string
	SaddleID            string
	BikeShopName        string
	SpecialRequirements string
	FittingFile         *string
}

// OrderUpdate is a partial update; nil fields are left untouched. A
// non-empty Note appends rather than overwrites.
type OrderUpdate struct {
	Status   *string
	Progress *int
	Note     string
}

// CreateOrder validates the input, snapshots the chosen offering, and stores
// a new order in status Processing. The repository is untouched on failure.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.SaddleID == "" {
		return nil, ErrMissingFields
	}

	saddleID, err := strconv.Atoi(in.SaddleID)
	if err != nil {
		return nil, ErrInvalidSaddle
	}
	saddle, ok := s.catalog.FindByID(saddleID)
	if !ok {
		return nil, ErrInvalidSaddle
	}

	bikeShopName := in.BikeShopName
	if bikeShopName == "" {
		bikeShopName = models.DefaultBikeShopName
	}

	now := time.Now().UTC()
	order := &models.Order{
		// Clock-based, so not guaranteed unique under rapid concurrent
		// creation or across restarts; the order id is the real key.
		OrderNumber:         fmt.Sprintf("SADDLE-%d", now.UnixMilli()),
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		BikeShopName:        bikeShopName,
		Saddle:              saddle,
		FittingFile:         in.FittingFile,
		SpecialRequirements: in.SpecialRequirements,
		Status:              models.StatusProcessing,
		OrderDate:           now,
		EstimatedCompletion: now.Add(models.EstimatedLeadTime),
		Progress:            0,
		Notes:               []models.OrderNote{},
	}

	return s.repo.Insert(order)
}

// UpdateOrder applies the supplied fields to an existing order. Status and
// progress are accepted as-is, without enumeration or range checks; the
// tracking dashboard treats them as display values.
func (s *OrderService) UpdateOrder(id int, upd OrderUpdate) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != "" {
		order.Status = *upd.Status
	}
	if upd.Progress != nil {
		order.Progress = *upd.Progress
	}
	if upd.Note != "" {
		order.Notes = append(order.Notes, models.OrderNote{
			ID:        s.nextNoteID(),
			Text:      upd.Note,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(id int) (*models.Order, error) {
	return s.repo.FindByID(id)
}

func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.repo.ListAll()
}

// nextNoteID derives note ids from the clock but bumps past the previous id
// when two appends land in the same millisecond. Caller holds s.mu.
func (s *OrderService) nextNoteID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastNoteID {
		id = s.lastNoteID + 1
	}
	s.lastNoteID = id
	return id
}
