package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

// Money renders an amount the way every screen and receipt shows it.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func Rule(width int) string {
	return strings.Repeat("-", width)
}

func Banner(width int) string {
	return strings.Repeat("=", width)
}

// Center pads s on the left so it sits in the middle of width columns.
func Center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func ItemTableHeader() string {
	return fmt.Sprintf("%-6s %-22s %-10s %-6s", "ID", "Item Name", "Price", "Stock")
}

func FormatItemRow(item models.Item) string {
	return fmt.Sprintf("%-6d %-22s %-10s %-6d", item.ID, clip(item.Name, 22), Money(item.Price), item.Stock)
}

func CartTableHeader() string {
	return fmt.Sprintf("%-5s %-20s %-10s %-5s %-10s", "ID", "Item Name", "Price", "Qty", "Total")
}

func FormatCartRow(line models.CartLine) string {
	return fmt.Sprintf("%-5d %-20s %-10s %-5d %-10s",
		line.Item.ID, clip(line.Item.Name, 20), Money(line.Item.Price), line.Quantity, Money(line.Subtotal()))
}

func CustomerTableHeader() string {
	return fmt.Sprintf("%-5s %-18s %-14s %-24s %-15s", "ID", "Name", "Phone", "Email", "Address")
}

func FormatCustomerRow(c models.Customer) string {
	return fmt.Sprintf("%-5d %-18s %-14s %-24s %-15s", c.ID, clip(c.Name, 18), c.Phone, clip(c.Email, 24), clip(c.Address, 15))
}

func ItemSalesHeaders() []string {
	return []string{"item_id", "item_name", "quantity_sold", "revenue"}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
