package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"pos-terminal/menu"
	"pos-terminal/services"
	"pos-terminal/status"
)

// Controller holds everything the menu actions need. One controller serves
// the single terminal session.
type Controller struct {
	Catalog   services.CatalogService
	Directory services.DirectoryService
	Ledger    services.LedgerService
	Reports   services.ReportService
	Session   *services.Session
	Status    status.Observer

	StoreName         string
	LowStockThreshold int
	ExportDir         string
	Clock             func() time.Time
}

func (h *Controller) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

func (h *Controller) ok(c *menu.Context, msg string) {
	c.Println(msg)
	h.Status.OnMessage(msg, status.Success)
}

func (h *Controller) warn(c *menu.Context, msg string) {
	c.Println(msg)
	h.Status.OnMessage(msg, status.Warning)
}

// fail prints err in terms the cashier understands and forwards it to the status views.
func (h *Controller) fail(c *menu.Context, err error) {
	msg := describe(err)
	c.Println(msg)
	h.Status.OnMessage(msg, status.Error)
}

func describe(err error) string {
	var stockErr *services.StockError
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &stockErr):
		return fmt.Sprintf("Insufficient stock! Available: %d", stockErr.Available)
	case errors.As(err, &verrs):
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: failed %q check", fe.Field(), fe.Tag())
	case errors.Is(err, services.ErrItemNotFound):
		return "Item not found!"
	case errors.Is(err, services.ErrCustomerNotFound):
		return "Customer not found!"
	case errors.Is(err, services.ErrCartLineNotFound):
		return "Item not found in cart!"
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Quantity must be greater than zero!"
	case errors.Is(err, services.ErrCartFull):
		return "Cart is full!"
	case errors.Is(err, services.ErrDirectoryFull):
		return "Customer directory is full!"
	case errors.Is(err, services.ErrLedgerFull):
		return "Receipt ledger is full!"
	case errors.Is(err, services.ErrNoCustomer):
		return "Please select a customer first!"
	case errors.Is(err, services.ErrEmptyCart):
		return "Cart is empty! Add items before generating receipt."
	case errors.Is(err, services.ErrCheckoutIncomplete):
		return "Sale recorded but not fully saved; it will be completed on next start."
	default:
		return "Error: " + err.Error()
	}
}

func (h *Controller) readInt(c *menu.Context, label string) (int, bool) {
	n, err := c.PromptInt(label)
	if errors.Is(err, menu.ErrInputClosed) {
		return 0, false
	}
	if err != nil {
		h.warn(c, "Invalid number entered!")
		return 0, false
	}
	return n, true
}
