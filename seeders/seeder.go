package seeders

import (
	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultItems is written to an empty catalog on first start.
func DefaultItems() []models.Item {
	return []models.Item{
		{ID: 101, Name: "Pen", Price: price("10.00"), Stock: 100},
		{ID: 102, Name: "Notebook", Price: price("50.00"), Stock: 200},
		{ID: 103, Name: "Pencil", Price: price("5.00"), Stock: 150},
		{ID: 104, Name: "Eraser", Price: price("3.00"), Stock: 80},
		{ID: 105, Name: "Ruler", Price: price("15.00"), Stock: 60},
		{ID: 106, Name: "Calculator", Price: price("250.00"), Stock: 25},
		{ID: 107, Name: "Stapler", Price: price("120.00"), Stock: 40},
		{ID: 108, Name: "Paper Pack", Price: price("80.00"), Stock: 75},
		{ID: 109, Name: "Marker", Price: price("25.00"), Stock: 90},
		{ID: 110, Name: "Folder", Price: price("20.00"), Stock: 120},
	}
}

// DefaultCustomers is written to an empty directory on first start.
func DefaultCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Rahul", Phone: "9876543210", Email: "rahul@example.com", Address: "Patan"},
		{ID: 2, Name: "Priya", Phone: "9876543211", Email: "priya@example.com", Address: "Ahmedabad"},
		{ID: 3, Name: "Amit", Phone: "9876543212", Email: "amit@example.com", Address: "Gandhinagar"},
		{ID: 4, Name: "Sita", Phone: "9876543213", Email: "sita@example.com", Address: "Rajkot"},
		{ID: 5, Name: "Ravi", Phone: "9876543214", Email: "ravi@example.com", Address: "Surat"},
		{ID: 6, Name: "Neha", Phone: "9876543215", Email: "neha@example.com", Address: "Vadodara"},
		{ID: 7, Name: "Kiran", Phone: "9876543216", Email: "kiran@example.com", Address: "Bhavnagar"},
		{ID: 8, Name: "Maya", Phone: "9876543217", Email: "maya@example.com", Address: "Junagadh"},
		{ID: 9, Name: "Dev", Phone: "9876543218", Email: "dev@example.com", Address: "Anand"},
		{ID: 10, Name: "Asha", Phone: "9876543219", Email: "asha@example.com", Address: "Mehsana"},
	}
}
