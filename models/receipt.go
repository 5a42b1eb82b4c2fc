package models

import "github.com/shopspring/decimal"

// DateLayout is the calendar date format stored on receipts.
const DateLayout = "2006-01-02"

type Receipt struct {
	ReceiptID   string          `json:"receipt_id"`
	CustomerID  int             `json:"customer_id"`
	Date        string          `json:"date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ReceiptDetail is one sold line. Name and price are copied at sale time.
type ReceiptDetail struct {
	ReceiptID string          `json:"receipt_id"`
	ItemID    int             `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}
