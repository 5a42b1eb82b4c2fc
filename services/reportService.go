package services

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
	"pos-terminal/utils"
)

type DailySalesReport struct {
	Date     string
	Receipts []models.Receipt
	Count    int
	Total    decimal.Decimal
	Average  decimal.Decimal
}

type PurchaseEntry struct {
	Receipt models.Receipt
	Details []models.ReceiptDetail
}

type CustomerHistoryReport struct {
	CustomerID int
	Entries    []PurchaseEntry
	Count      int
	TotalSpent decimal.Decimal
}

type ItemSales struct {
	ItemID       int
	Name         string
	QuantitySold int
	Revenue      decimal.Decimal
}

type ItemSalesReport struct {
	Items         []ItemSales
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

type DashboardReport struct {
	Date              string
	TodayTransactions int
	TodaySales        decimal.Decimal
	LowStock          []models.Item
	TopItems          []ItemSales
}

type ReportService interface {
	DailySales(date string) DailySalesReport
	CustomerHistory(customerID int) CustomerHistoryReport
	ItemSalesSummary() ItemSalesReport
	Dashboard(date string, lowStockThreshold, top int) DashboardReport
	ExportItemSales(path string) error
	ExportItemSalesCSV(w io.Writer) error
}

type reportService struct {
	ledger  LedgerService
	catalog CatalogService
}

func NewReportService(ledger LedgerService, catalog CatalogService) ReportService {
	return &reportService{ledger: ledger, catalog: catalog}
}

func (s *reportService) DailySales(date string) DailySalesReport {
	report := DailySalesReport{Date: date, Total: decimal.Zero, Average: decimal.Zero}
	for _, r := range s.ledger.Receipts() {
		if r.Date != date {
			continue
		}
		report.Receipts = append(report.Receipts, r)
		report.Total = report.Total.Add(r.TotalAmount)
	}
	report.Count = len(report.Receipts)
	if report.Count > 0 {
		report.Average = report.Total.Div(decimal.NewFromInt(int64(report.Count)))
	}
	return report
}

func (s *reportService) CustomerHistory(customerID int) CustomerHistoryReport {
	report := CustomerHistoryReport{CustomerID: customerID, TotalSpent: decimal.Zero}
	for _, r := range s.ledger.Receipts() {
		if r.CustomerID != customerID {
			continue
		}
		report.Entries = append(report.Entries, PurchaseEntry{
			Receipt: r,
			Details: s.ledger.DetailsFor(r.ReceiptID),
		})
		report.TotalSpent = report.TotalSpent.Add(r.TotalAmount)
	}
	report.Count = len(report.Entries)
	return report
}

// ItemSalesSummary aggregates sold quantity and revenue per item, highest
// revenue first. Items with equal revenue keep the order they were first sold in.
func (s *reportService) ItemSalesSummary() ItemSalesReport {
	rows := s.aggregate()
	slices.SortStableFunc(rows, func(a, b ItemSales) int {
		return b.Revenue.Cmp(a.Revenue)
	})

	report := ItemSalesReport{Items: rows, TotalRevenue: decimal.Zero}
	for _, row := range rows {
		report.TotalQuantity += row.QuantitySold
		report.TotalRevenue = report.TotalRevenue.Add(row.Revenue)
	}
	return report
}

func (s *reportService) aggregate() []ItemSales {
	var rows []ItemSales
	index := make(map[int]int)
	for _, d := range s.ledger.Details() {
		i, ok := index[d.ItemID]
		if !ok {
			i = len(rows)
			index[d.ItemID] = i
			rows = append(rows, ItemSales{ItemID: d.ItemID, Name: d.ItemName, Revenue: decimal.Zero})
		}
		rows[i].QuantitySold += d.Quantity
		rows[i].Revenue = rows[i].Revenue.Add(d.Total)
	}
	return rows
}

func (s *reportService) Dashboard(date string, lowStockThreshold, top int) DashboardReport {
	daily := s.DailySales(date)

	rows := s.aggregate()
	slices.SortStableFunc(rows, func(a, b ItemSales) int {
		return b.QuantitySold - a.QuantitySold
	})
	if top >= 0 && len(rows) > top {
		rows = rows[:top]
	}

	return DashboardReport{
		Date:              date,
		TodayTransactions: daily.Count,
		TodaySales:        daily.Total,
		LowStock:          s.catalog.LowStock(lowStockThreshold),
		TopItems:          rows,
	}
}

func itemSalesRows(report ItemSalesReport) [][]string {
	rows := make([][]string, 0, len(report.Items))
	for _, it := range report.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.ItemID),
			it.Name,
			strconv.Itoa(it.QuantitySold),
			it.Revenue.StringFixed(2),
		})
	}
	return rows
}

// ExportItemSales writes the item sales summary to an Excel workbook.
func (s *reportService) ExportItemSales(path string) error {
	report := s.ItemSalesSummary()
	if err := utils.WriteXLSX(path, "Item Sales", utils.ItemSalesHeaders(), itemSalesRows(report)); err != nil {
		return fmt.Errorf("export item sales: %w", err)
	}
	return nil
}

func (s *reportService) ExportItemSalesCSV(w io.Writer) error {
	report := s.ItemSalesSummary()
	return utils.WriteCSV(w, utils.ItemSalesHeaders(), itemSalesRows(report))
}
