package repository

import (
	"time"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

// SeedUsers returns the demo accounts available out of the box. The caller
// supplies the bcrypt hash for the demo password so this package stays free
// of crypto work.
func SeedUsers(demoPasswordHash string) []model.User {
	return []model.User{
		{
			ID:           "usr-demo-0001",
			Email:        "demo@lumiskin.com",
			PasswordHash: demoPasswordHash,
			FirstName:    "Dana",
			LastName:     "Rivera",
			DateJoined:   time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC),
			IsInsider:    true,
			Orders: []model.Order{
				{
					ID:     "LS-10384",
					Date:   time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
					Status: model.OrderStatusDelivered,
					Items: []model.OrderItem{
						{ProductName: "Vitamin C Brightening Serum", Quantity: 1, Price: usd(24.99)},
						{ProductName: "Daily Defense Sunscreen SPF 50+", Quantity: 2, Price: usd(19.99)},
					},
					Total: usd(64.97),
				},
				{
					ID:     "LS-11052",
					Date:   time.Date(2026, time.August, 19, 0, 0, 0, 0, time.UTC),
					Status: model.OrderStatusShipped,
					Items: []model.OrderItem{
						{ProductName: "Ceramide Barrier Repair Balm", Quantity: 1, Price: usd(26.00)},
					},
					Total: usd(26.00),
				},
			},
		},
	}
}
