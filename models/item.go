package models

import "github.com/shopspring/decimal"

// MaxNameLen is the longest display name stored for items and customers.
const MaxNameLen = 49

type Item struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// CartLine holds a copy of the catalog row taken when the item was added,
// so later catalog changes do not reprice a staged line.
type CartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
