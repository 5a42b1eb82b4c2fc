package controllers

import (
	"fmt"
	"os"
	"path/filepath"

	"pos-terminal/menu"
	"pos-terminal/models"
	"pos-terminal/utils"
)

const dashboardTopItems = 5

func (h *Controller) Dashboard(c *menu.Context) {
	today := h.now().Format(models.DateLayout)
	report := h.Reports.Dashboard(today, h.LowStockThreshold, dashboardTopItems)

	c.Printf("\n%s\n", utils.Banner(50))
	c.Printf("           DASHBOARD - %s\n", today)
	c.Println(utils.Banner(50))
	c.Printf("Today's Transactions: %d\n", report.TodayTransactions)
	c.Printf("Today's Sales: %s\n", utils.Money(report.TodaySales))

	c.Printf("\nLow Stock (< %d): %d\n", h.LowStockThreshold, len(report.LowStock))
	for _, item := range report.LowStock {
		c.Printf("  - %d %s (%d left)\n", item.ID, item.Name, item.Stock)
	}

	c.Println("\nTop Selling Items:")
	if len(report.TopItems) == 0 {
		c.Println("  No sales yet.")
	}
	for i, it := range report.TopItems {
		c.Printf("  %d. %s x%d\n", i+1, it.Name, it.QuantitySold)
	}
	c.Println(utils.Banner(50))
}

func (h *Controller) ExportItemSales(c *menu.Context) {
	name := fmt.Sprintf("item_sales_%s.xlsx", h.now().Format("20060102_150405"))
	path := filepath.Join(h.ExportDir, name)

	if err := h.Reports.ExportItemSales(path); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Sales summary exported to "+path)
}

func (h *Controller) ExportItemSalesCSV(c *menu.Context) {
	name := fmt.Sprintf("item_sales_%s.csv", h.now().Format("20060102_150405"))
	path := filepath.Join(h.ExportDir, name)

	f, err := os.Create(path)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	if err := h.Reports.ExportItemSalesCSV(f); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Sales summary exported to "+path)
}
