package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

const receiptWidth = 60

// FormatReceipt renders the printed customer receipt.
func FormatReceipt(storeName string, customer models.Customer, receipt models.Receipt, details []models.ReceiptDetail, at time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, Banner(receiptWidth))
	fmt.Fprintln(&b, Center(storeName, receiptWidth))
	fmt.Fprintln(&b, Center("CUSTOMER RECEIPT", receiptWidth))
	fmt.Fprintln(&b, Banner(receiptWidth))
	fmt.Fprintf(&b, "Date: %-25s Time: %s\n", receipt.Date, at.Format("15:04:05"))
	fmt.Fprintf(&b, "Receipt ID: %s\n", receipt.ReceiptID)
	fmt.Fprintln(&b, Rule(receiptWidth))
	fmt.Fprintf(&b, "Customer: %s\n", customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	fmt.Fprintf(&b, "Email: %s\n", customer.Email)
	fmt.Fprintln(&b, Rule(receiptWidth))
	fmt.Fprintf(&b, "%-8s %-20s %-5s %-10s %-10s\n", "Item ID", "Item Name", "Qty", "Price", "Total")
	fmt.Fprintln(&b, Rule(receiptWidth))
	for _, d := range details {
		fmt.Fprintf(&b, "%-8d %-20s %-5d %-10s %-10s\n", d.ItemID, clip(d.ItemName, 20), d.Quantity, Money(d.Price), Money(d.Total))
	}
	fmt.Fprintln(&b, Rule(receiptWidth))
	fmt.Fprintf(&b, "%-50s %s\n", "TOTAL AMOUNT", Money(receipt.TotalAmount))
	fmt.Fprintln(&b, Banner(receiptWidth))
	fmt.Fprintln(&b, Center("Thank you for shopping with us!", receiptWidth))
	fmt.Fprintln(&b, Banner(receiptWidth))

	return b.String()
}

// FormatTransactionMessage is the one-line status shown after a checkout.
func FormatTransactionMessage(receiptID string, total decimal.Decimal) string {
	return fmt.Sprintf("Receipt %s: %s", receiptID, Money(total))
}

func FormatCartMessage(lines int, total decimal.Decimal) string {
	if lines == 0 {
		return "Cart is empty"
	}
	return fmt.Sprintf("Cart: %d items, %s", lines, Money(total))
}
