package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"saddleworks-backend/internal/models"
)

// DemoOrders returns the sample order shown on the tracking dashboard when
// the service starts with an empty store.
func DemoOrders() []models.Order {
	fittingFile := "sarah_fitting_data.pdf"
	return []models.Order{
		{
			ID:            1,
			OrderNumber:   "SADDLE-1703123456789",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah.johnson@bikefitter.com",
			BikeShopName:  "Johnson's Bike Fitting Studio",
			Saddle: models.SaddleOffering{
				ID:          2,
				Name:        "Comfort Plus",
				Description: "Padded comfort saddle ideal for long-distance touring and commuting",
				Price:       decimal.RequireFromString("199.99"),
				Image:       "/images/comfort-plus.jpg",
				Category:    "Comfort",
			},
			FittingFile:         &fittingFile,
			SpecialRequirements: "Extra padding for long-distance touring, pressure relief channel",
			Status:              models.StatusInProgress,
			OrderDate:           time.Date(2023, 12, 20, 10, 30, 0, 0, time.UTC),
			EstimatedCompletion: time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC),
			Progress:            55,
			Notes: []models.OrderNote{
				{
					ID:        1703123456789,
					Text:      "Initial measurements received and analyzed",
					Timestamp: time.Date(2023, 12, 20, 10, 30, 0, 0, time.UTC),
				},
				{
					ID:        1703209856789,
					Text:      "Saddle base construction completed, starting padding application",
					Timestamp: time.Date(2023, 12, 21, 14, 30, 0, 0, time.UTC),
				},
			},
		},
	}
}
