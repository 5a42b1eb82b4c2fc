package controllers

import (
	"time"

	"pos-terminal/menu"
	"pos-terminal/models"
	"pos-terminal/services"
	"pos-terminal/utils"
)

func (h *Controller) DailySalesReport(c *menu.Context) {
	date, err := c.Prompt("Enter date (YYYY-MM-DD) or press Enter for today: ")
	if err != nil {
		return
	}
	if date == "" {
		date = h.now().Format(models.DateLayout)
	} else if _, perr := time.Parse(models.DateLayout, date); perr != nil {
		h.warn(c, "Invalid date format! Use YYYY-MM-DD.")
		return
	}

	report := h.Reports.DailySales(date)

	c.Printf("\n%s\n", utils.Banner(50))
	c.Printf("           DAILY SALES REPORT - %s\n", date)
	c.Println(utils.Banner(50))

	if report.Count == 0 {
		c.Println("No sales found for this date.")
		return
	}

	c.Printf("%-12s %-12s %-12s\n", "Receipt ID", "Customer ID", "Amount")
	c.Println(utils.Rule(40))
	for _, r := range report.Receipts {
		c.Printf("%-12s %-12d %-12s\n", r.ReceiptID, r.CustomerID, utils.Money(r.TotalAmount))
	}
	c.Println(utils.Rule(40))
	c.Printf("Total Transactions: %d\n", report.Count)
	c.Printf("Total Sales: %s\n", utils.Money(report.Total))
	c.Printf("Average Transaction: %s\n", utils.Money(report.Average))
	c.Println(utils.Banner(50))
}

// CustomerHistory reports on the selected customer.
func (h *Controller) CustomerHistory(c *menu.Context) {
	if h.Session.Customer == nil {
		h.fail(c, services.ErrNoCustomer)
		return
	}

	report := h.Reports.CustomerHistory(h.Session.Customer.ID)

	c.Printf("\n%s\n", utils.Banner(60))
	c.Printf("        CUSTOMER PURCHASE HISTORY - ID: %d\n", report.CustomerID)
	c.Println(utils.Banner(60))

	if report.Count == 0 {
		c.Println("No purchase history found for this customer.")
		return
	}

	for _, e := range report.Entries {
		c.Printf("\nReceipt ID: %s | Date: %s | Amount: %s\n", e.Receipt.ReceiptID, e.Receipt.Date, utils.Money(e.Receipt.TotalAmount))
		for _, d := range e.Details {
			c.Printf("  - %s x%d @ %s = %s\n", d.ItemName, d.Quantity, utils.Money(d.Price), utils.Money(d.Total))
		}
	}
	c.Println(utils.Rule(60))
	c.Printf("Total Purchases: %d\n", report.Count)
	c.Printf("Total Amount Spent: %s\n", utils.Money(report.TotalSpent))
	c.Println(utils.Banner(60))
}

func (h *Controller) ItemSalesSummary(c *menu.Context) {
	report := h.Reports.ItemSalesSummary()

	c.Printf("\n%s\n", utils.Banner(60))
	c.Println(utils.Center("ITEM SALES SUMMARY", 60))
	c.Println(utils.Banner(60))

	if len(report.Items) == 0 {
		c.Println("No sales data available.")
		return
	}

	c.Printf("%-8s %-20s %-10s %-12s\n", "Item ID", "Item Name", "Qty Sold", "Revenue")
	c.Println(utils.Rule(60))
	for _, it := range report.Items {
		c.Printf("%-8d %-20s %-10d %-12s\n", it.ItemID, it.Name, it.QuantitySold, utils.Money(it.Revenue))
	}
	c.Println(utils.Rule(60))
	c.Printf("Total Items Sold: %d\n", report.TotalQuantity)
	c.Printf("Total Revenue: %s\n", utils.Money(report.TotalRevenue))
	c.Println(utils.Banner(60))
}
