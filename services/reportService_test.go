package services

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"pos-terminal/models"
)

// sell checks out one receipt for customerID on day.
func (f *fixture) sell(t *testing.T, customerID int, day time.Time, lines ...[2]int) {
	t.Helper()
	f.now = day
	s := NewSession(50)
	s.SelectCustomer(&models.Customer{ID: customerID})
	for _, l := range lines {
		require.NoError(t, s.Cart.AddItem(f.catalog, l[0], l[1]))
	}
	_, err := f.ledger.Checkout(context.Background(), s)
	require.NoError(t, err)
}

func reportFixture(t *testing.T) (*fixture, ReportService) {
	t.Helper()
	f := newFixture(t)
	jan15 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	jan16 := jan15.AddDate(0, 0, 1)

	// R001 50.00, R002 60.00 on the 15th; R003 260.00, R004 60.00 on the 16th.
	f.sell(t, 1, jan15, [2]int{101, 5})
	f.sell(t, 2, jan15, [2]int{102, 1}, [2]int{103, 2})
	f.sell(t, 1, jan16, [2]int{106, 1}, [2]int{101, 1})
	f.sell(t, 3, jan16, [2]int{104, 20})

	return f, NewReportService(f.ledger, f.catalog)
}

func TestReportService_DailySales(t *testing.T) {
	_, reports := reportFixture(t)

	day := reports.DailySales("2024-01-15")
	assert.Equal(t, 2, day.Count)
	assert.Equal(t, "110.00", day.Total.StringFixed(2))
	assert.Equal(t, "55.00", day.Average.StringFixed(2))
	require.Len(t, day.Receipts, 2)
	assert.Equal(t, "R001", day.Receipts[0].ReceiptID)

	empty := reports.DailySales("2023-12-31")
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Total.IsZero())
	assert.True(t, empty.Average.IsZero())
}

func TestReportService_CustomerHistory(t *testing.T) {
	_, reports := reportFixture(t)

	history := reports.CustomerHistory(1)
	assert.Equal(t, 2, history.Count)
	assert.Equal(t, "310.00", history.TotalSpent.StringFixed(2))
	require.Len(t, history.Entries, 2)
	assert.Equal(t, "R003", history.Entries[1].Receipt.ReceiptID)
	assert.Len(t, history.Entries[1].Details, 2)

	none := reports.CustomerHistory(9)
	assert.Zero(t, none.Count)
	assert.True(t, none.TotalSpent.IsZero())
}

func TestReportService_ItemSalesSummary(t *testing.T) {
	_, reports := reportFixture(t)

	summary := reports.ItemSalesSummary()
	var ids []int
	for _, row := range summary.Items {
		ids = append(ids, row.ItemID)
	}
	// 106 250.00, 101 60.00, 104 60.00, 102 50.00, 103 10.00; the tie keeps first-sold order.
	assert.Equal(t, []int{106, 101, 104, 102, 103}, ids)
	assert.Equal(t, 6, summary.Items[1].QuantitySold)
	assert.Equal(t, 30, summary.TotalQuantity)
	assert.Equal(t, "430.00", summary.TotalRevenue.StringFixed(2))
}

func TestReportService_Dashboard(t *testing.T) {
	f, reports := reportFixture(t)
	require.NoError(t, f.catalog.SetStock(107, 2))

	dash := reports.Dashboard("2024-01-16", 5, 2)
	assert.Equal(t, 2, dash.TodayTransactions)
	assert.Equal(t, "320.00", dash.TodaySales.StringFixed(2))
	require.Len(t, dash.LowStock, 1)
	assert.Equal(t, 107, dash.LowStock[0].ID)
	require.Len(t, dash.TopItems, 2)
	assert.Equal(t, 104, dash.TopItems[0].ItemID)
	assert.Equal(t, 101, dash.TopItems[1].ItemID)

	assert.Len(t, reports.Dashboard("2024-01-16", 5, -1).TopItems, 5)
}

func TestReportService_ExportItemSales(t *testing.T) {
	_, reports := reportFixture(t)
	path := filepath.Join(t.TempDir(), "item_sales.xlsx")

	require.NoError(t, reports.ExportItemSales(path))

	wb, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	sheet := wb.Sheets[0]
	assert.Equal(t, "Item Sales", sheet.Name)
	require.Len(t, sheet.Rows, 6)
	assert.Equal(t, "item_id", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Calculator", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "250.00", sheet.Rows[1].Cells[3].String())
}

func TestReportService_ExportItemSalesCSV(t *testing.T) {
	_, reports := reportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, reports.ExportItemSalesCSV(&buf))
	assert.Equal(t, "item_id,item_name,quantity_sold,revenue\n"+
		"106,Calculator,1,250.00\n"+
		"101,Pen,6,60.00\n"+
		"104,Eraser,20,60.00\n"+
		"102,Notebook,1,50.00\n"+
		"103,Pencil,2,10.00\n", buf.String())
}
