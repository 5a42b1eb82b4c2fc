package services

import (
	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

// Cart stages the lines of the sale in progress. It is owned by a single
// session and is not safe for concurrent use.
type Cart struct {
	maxLines int
	lines    []models.CartLine
}

func NewCart(maxLines int) *Cart {
	return &Cart{maxLines: maxLines}
}

// AddItem stages qty units of the item, merging with an existing line for
// the same item. The cart is left unchanged when an error is returned.
func (c *Cart) AddItem(catalog ItemFinder, itemID, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	item, ok := catalog.FindByID(itemID)
	if !ok {
		return ErrItemNotFound
	}

	if i := c.index(itemID); i >= 0 {
		want := c.lines[i].Quantity + qty
		if item.Stock < want {
			return &StockError{ItemID: itemID, Requested: want, Available: item.Stock}
		}
		c.lines[i].Quantity = want
		return nil
	}

	if item.Stock < qty {
		return &StockError{ItemID: itemID, Requested: qty, Available: item.Stock}
	}
	if len(c.lines) >= c.maxLines {
		return ErrCartFull
	}

	c.lines = append(c.lines, models.CartLine{Item: item, Quantity: qty})
	return nil
}

// UpdateQuantity sets the quantity of a staged line. A quantity of zero or
// less removes the line.
func (c *Cart) UpdateQuantity(catalog ItemFinder, itemID, qty int) error {
	i := c.index(itemID)
	if i < 0 {
		return ErrCartLineNotFound
	}
	if qty <= 0 {
		c.RemoveItem(itemID)
		return nil
	}

	available := c.lines[i].Item.Stock
	if item, ok := catalog.FindByID(itemID); ok {
		available = item.Stock
	}
	if available < qty {
		return &StockError{ItemID: itemID, Requested: qty, Available: available}
	}

	c.lines[i].Quantity = qty
	return nil
}

// RemoveItem drops the line for itemID, keeping the order of the others.
func (c *Cart) RemoveItem(itemID int) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) index(itemID int) int {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Session is the state of the one terminal: the selected customer and the cart.
type Session struct {
	Customer *models.Customer
	Cart     *Cart
}

func NewSession(maxCartLines int) *Session {
	return &Session{Cart: NewCart(maxCartLines)}
}

func (s *Session) SelectCustomer(c *models.Customer) {
	s.Customer = c
}
