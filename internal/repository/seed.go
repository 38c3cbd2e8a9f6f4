package repository

import (
	"time"

	"github.com/mmeshcher/workshop-system/internal/model"
)

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func isoFromNow(d time.Duration) string {
	return time.Now().UTC().Add(d).Format(time.RFC3339)
}

// SeedCustomers returns the built-in customer records used when storage
// holds no customers collection.
func SeedCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:      "1",
			Name:    "John Doe",
			Phone:   "+1234567890",
			Email:   "john@example.com",
			Address: "123 Main St, City",
		},
		{
			ID:      "2",
			Name:    "Jane Smith",
			Phone:   "+0987654321",
			Email:   "jane@example.com",
			Address: "456 Oak St, Town",
		},
	}
}

// SeedProducts returns the built-in product records.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:            "1",
			Name:          "Custom Cabinet",
			Description:   "Oak wood cabinet with glass doors",
			Price:         1200,
			InStock:       true,
			DateCreated:   isoNow(),
			Category:      "Furniture",
			FrontPhotoURL: "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9",
			BackPhotoURL:  "https://images.unsplash.com/photo-1535268647677-300dbf3d78d1",
		},
		{
			ID:            "2",
			Name:          "Metal Brackets",
			Description:   "Set of 4 steel brackets for shelving",
			Price:         45,
			InStock:       true,
			DateCreated:   isoNow(),
			Category:      "Hardware",
			FrontPhotoURL: "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
		},
		{
			ID:          "3",
			Name:        "Walnut Dining Table",
			Description: "Walnut dining table, 6 seats",
			Price:       2500,
			InStock:     false,
			DateCreated: isoNow(),
			Category:    "Furniture",
		},
	}
}

// SeedOrders returns the built-in order records.
func SeedOrders() []model.Order {
	return []model.Order{
		{
			ID:                   "1",
			CustomerID:           "1",
			ProductName:          "Custom Cabinet",
			Description:          "Oak wood cabinet with glass doors",
			Status:               model.OrderStatusPending,
			DateCreated:          isoNow(),
			ExpectedDeliveryDate: isoFromNow(7 * 24 * time.Hour),
			Notes:                "Customer wants dark stain finish",
		},
		{
			ID:                   "2",
			CustomerID:           "2",
			ProductName:          "Metal Brackets",
			Description:          "Set of 4 steel brackets for shelving",
			Status:               model.OrderStatusInProgress,
			DateCreated:          isoFromNow(-3 * 24 * time.Hour),
			ExpectedDeliveryDate: isoFromNow(2 * 24 * time.Hour),
		},
		{
			ID:            "3",
			CustomerID:    "1",
			ProductName:   "Custom Table",
			Description:   "Walnut dining table, 6 seats",
			Status:        model.OrderStatusCompleted,
			DateCreated:   isoFromNow(-10 * 24 * time.Hour),
			DateCompleted: isoNow(),
		},
	}
}
