package catalog

import (
	"github.com/shopspring/decimal"

	"saddleworks-backend/internal/models"
)

// Catalog is the static, read-only set of saddle offerings. It is seeded at
// construction and never mutated afterwards.
type Catalog struct {
	offerings []models.SaddleOffering
}

func New() *Catalog {
	return &Catalog{offerings: defaultOfferings()}
}

func defaultOfferings() []models.SaddleOffering {
	return []models.SaddleOffering{
		{
			ID:          1,
			Name:        "Racing Pro",
			Description: "Lightweight racing saddle with minimal padding for maximum power transfer",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "/images/racing-pro.jpg",
			Category:    "Racing",
		},
		{
			ID:          2,
			Name:        "Comfort Plus",
			Description: "Padded comfort saddle ideal for long-distance touring and commuting",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "/images/comfort-plus.jpg",
			Category:    "Comfort",
		},
		{
			ID:          3,
			Name:        "Mountain Elite",
			Description: "Durable mountain bike saddle with reinforced construction for rough terrain",
			Price:       decimal.RequireFromString("249.99"),
			Image:       "/images/mountain-elite.jpg",
			Category:    "Mountain",
		},
		{
			ID:          4,
			Name:        "Gravel Adventure",
			Description: "Versatile saddle designed for gravel riding and mixed terrain",
			Price:       decimal.RequireFromString("229.99"),
			Image:       "/gravel-adventure.jpg",
			Category:    "Gravel",
		},
	}
}

// List returns the offerings in catalog order.
func (c *Catalog) List() []models.SaddleOffering {
	out := make([]models.SaddleOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// FindByID returns the offering with the given id, or false when unknown.
func (c *Catalog) FindByID(id int) (models.SaddleOffering, bool) {
	for _, s := range c.offerings {
		if s.ID == id {
			return s, true
		}
	}
	return models.SaddleOffering{}, false
}
