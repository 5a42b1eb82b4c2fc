package controllers

import (
	"fmt"

	"pos-terminal/menu"
	"pos-terminal/models"
	"pos-terminal/services"
	"pos-terminal/utils"
)

func (h *Controller) SearchCustomers(c *menu.Context) {
	query, err := c.Prompt("Enter customer name, phone, or ID to search: ")
	if err != nil {
		return
	}

	customers := h.Directory.Search(query)
	if len(customers) == 0 {
		h.warn(c, "No customers found!")
		return
	}

	c.Println("\nSearch Results:")
	c.Println(utils.CustomerTableHeader())
	for _, cust := range customers {
		c.Println(utils.FormatCustomerRow(cust))
	}
}

func (h *Controller) ListCustomers(c *menu.Context) {
	c.Println("\nAll Customers:")
	c.Println(utils.CustomerTableHeader())
	c.Println(utils.Rule(80))
	for _, cust := range h.Directory.All() {
		c.Println(utils.FormatCustomerRow(cust))
	}
}

func (h *Controller) AddCustomer(c *menu.Context) {
	var input models.CustomerInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter name: ", &input.Name},
		{"Enter phone: ", &input.Phone},
		{"Enter email: ", &input.Email},
		{"Enter address: ", &input.Address},
	}
	for _, f := range fields {
		v, err := c.Prompt(f.label)
		if err != nil {
			return
		}
		*f.dst = v
	}

	customer, err := h.Directory.Create(input)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, fmt.Sprintf("Customer added successfully! ID: %d", customer.ID))
}

func (h *Controller) SelectCustomer(c *menu.Context) {
	id, ok := h.readInt(c, "Enter customer ID: ")
	if !ok {
		return
	}

	customer, found := h.Directory.FindByID(id)
	if !found {
		h.fail(c, services.ErrCustomerNotFound)
		return
	}

	h.Session.SelectCustomer(&customer)
	c.Printf("Selected customer: %s\n", customer.Name)
	h.Status.OnCustomerSelected(h.Session.Customer)
}
