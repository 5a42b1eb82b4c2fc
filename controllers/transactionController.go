package controllers

import (
	"context"
	"errors"

	"pos-terminal/menu"
	"pos-terminal/services"
	"pos-terminal/utils"
)

// GenerateReceipt checks out the cart for the selected customer and prints the receipt.
func (h *Controller) GenerateReceipt(c *menu.Context) {
	result, err := h.Ledger.Checkout(context.Background(), h.Session)
	if err != nil && !errors.Is(err, services.ErrCheckoutIncomplete) {
		h.fail(c, err)
		return
	}

	c.Print(utils.FormatReceipt(h.StoreName, *h.Session.Customer, result.Receipt, result.Details, h.now()))
	if err != nil {
		h.fail(c, err)
	} else {
		c.Printf("Receipt generated successfully! Receipt ID: %s\n", result.Receipt.ReceiptID)
	}

	h.Status.OnTransactionCompleted(result.Receipt.ReceiptID, result.Receipt.TotalAmount)
	h.Status.OnCartChanged()
}

func (h *Controller) ClearCart(c *menu.Context) {
	h.Session.Cart.Clear()
	h.ok(c, "Cart cleared!")
	h.Status.OnCartChanged()
}
