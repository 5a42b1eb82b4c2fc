package controllers

import (
	"pos-terminal/menu"
	"pos-terminal/services"
	"pos-terminal/utils"
)

func (h *Controller) SearchItems(c *menu.Context) {
	query, err := c.Prompt("Enter item name or ID to search: ")
	if err != nil {
		return
	}

	items := h.Catalog.Search(query)
	if len(items) == 0 {
		h.warn(c, "No items found!")
		return
	}

	c.Println("\nSearch Results:")
	c.Println(utils.ItemTableHeader())
	for _, item := range items {
		c.Println(utils.FormatItemRow(item))
	}
}

func (h *Controller) ListItems(c *menu.Context) {
	items := h.Catalog.All()
	if len(items) == 0 {
		h.warn(c, "Catalog is empty!")
		return
	}

	c.Println("\nAll Items:")
	c.Println(utils.ItemTableHeader())
	c.Println(utils.Rule(48))
	for _, item := range items {
		c.Println(utils.FormatItemRow(item))
	}
}

func (h *Controller) AddToCart(c *menu.Context) {
	itemID, ok := h.readInt(c, "Enter item ID to add to cart: ")
	if !ok {
		return
	}
	qty, ok := h.readInt(c, "Enter quantity: ")
	if !ok {
		return
	}

	if err := h.Session.Cart.AddItem(h.Catalog, itemID, qty); err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "Item added to cart successfully!")
	h.Status.OnCartChanged()
}

func (h *Controller) ViewCart(c *menu.Context) {
	cart := h.Session.Cart
	if cart.IsEmpty() {
		c.Println("\nCart is empty!")
		return
	}

	c.Println("\n" + utils.Banner(60))
	c.Println(utils.Center("CURRENT CART", 60))
	c.Println(utils.Banner(60))
	c.Println(utils.CartTableHeader())
	c.Println(utils.Rule(60))
	for _, line := range cart.Lines() {
		c.Println(utils.FormatCartRow(line))
	}
	c.Println(utils.Rule(60))
	c.Printf("%-50s %s\n", "TOTAL AMOUNT", utils.Money(cart.Total()))
	c.Println(utils.Banner(60))
}

func (h *Controller) UpdateCartQuantity(c *menu.Context) {
	itemID, ok := h.readInt(c, "Enter item ID to update: ")
	if !ok {
		return
	}
	qty, ok := h.readInt(c, "Enter new quantity (0 removes): ")
	if !ok {
		return
	}

	if err := h.Session.Cart.UpdateQuantity(h.Catalog, itemID, qty); err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "Cart updated!")
	h.Status.OnCartChanged()
}

func (h *Controller) RemoveFromCart(c *menu.Context) {
	itemID, ok := h.readInt(c, "Enter item ID to remove from cart: ")
	if !ok {
		return
	}

	if !h.Session.Cart.RemoveItem(itemID) {
		h.fail(c, services.ErrCartLineNotFound)
		return
	}

	h.ok(c, "Item removed from cart!")
	h.Status.OnCartChanged()
}
