package services

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCartLineNotFound   = errors.New("item not in cart")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartFull           = errors.New("cart is full")
	ErrDirectoryFull      = errors.New("customer directory is full")
	ErrLedgerFull         = errors.New("receipt ledger is full")
	ErrNoCustomer         = errors.New("no customer selected")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutIncomplete = errors.New("checkout recorded but not fully applied")
)

// StockError reports a cart request that asks for more units than the catalog holds.
type StockError struct {
	ItemID    int
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
