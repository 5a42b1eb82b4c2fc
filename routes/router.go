package routes

import (
	"pos-terminal/controllers"
	"pos-terminal/menu"
)

func RegisterRoutes(r *menu.Engine, h *controllers.Controller) {

	// Items and cart staging
	items := r.Group("Item Management")
	{
		items.Handle("Search Item", h.SearchItems)
		items.Handle("View All Items", h.ListItems)
		items.Handle("Add Item to Cart", h.AddToCart)
		items.Handle("View Cart", h.ViewCart)
		items.Handle("Update Cart Quantity", h.UpdateCartQuantity)
		items.Handle("Remove Item from Cart", h.RemoveFromCart)
	}

	// Customers
	customers := r.Group("Customer Management")
	{
		customers.Handle("Search Customer", h.SearchCustomers)
		customers.Handle("View All Customers", h.ListCustomers)
		customers.Handle("Add New Customer", h.AddCustomer)
		customers.Handle("Select Customer", h.SelectCustomer)
	}

	// Checkout
	billing := r.Group("Billing & Checkout")
	{
		billing.Handle("View Current Cart", h.ViewCart)
		billing.Handle("Generate Receipt", h.GenerateReceipt)
		billing.Handle("Clear Cart", h.ClearCart)
	}

	// Reports (read-only)
	reports := r.Group("Reports")
	{
		reports.Handle("Daily Sales Report", h.DailySalesReport)
		reports.Handle("Customer Purchase History", h.CustomerHistory)
		reports.Handle("Item Sales Summary", h.ItemSalesSummary)
		reports.Handle("Dashboard", h.Dashboard)
		reports.Handle("Export Sales Summary (Excel)", h.ExportItemSales)
		reports.Handle("Export Sales Summary (CSV)", h.ExportItemSalesCSV)
	}
}
