package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportapp "github.com/luxegem/backend/internal/application/report"
	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/luxegem/backend/internal/infrastructure/persistence"
	"github.com/luxegem/backend/internal/infrastructure/persistence/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedInvoice(t *testing.T, tdb *TestDB, inv invoice.Invoice) {
	t.Helper()

	var model models.InvoiceModel
	model.FromDomain(&inv)
	require.NoError(t, tdb.DB.Create(&model).Error)
}

// seedReportInvoices loads a small fixed data set: three shop-one invoices
// across the year plus one shop-two invoice that must never leak over.
func seedReportInvoices(t *testing.T, tdb *TestDB) {
	t.Helper()

	goldWeight := dec("10.5")
	silverWeight := dec("50")

	seedInvoice(t, tdb, invoice.Invoice{
		InvoiceNumber: "INV-2024-0001",
		TenantID:      "shop-one",
		CustomerName:  "Priya Sharma",
		IssueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:        "PAID",
		PaymentMethod: "UPI",
		Type:          "GOLD_22K",
		GrossAmount:   dec("25000"),
		NetAmount:     dec("25000"),
		Discount:      dec("500"),
		Items: []invoice.LineItem{
			{Description: "Gold chain", Type: "GOLD_22K", Weight: &goldWeight, Rate: dec("2380")},
		},
	})
	seedInvoice(t, tdb, invoice.Invoice{
		InvoiceNumber: "INV-2024-0002",
		TenantID:      "shop-one",
		CustomerName:  "Arjun Mehta",
		IssueDate:     time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Status:        "PAID",
		PaymentMethod: "CASH",
		Type:          "SILVER",
		GrossAmount:   dec("4000"),
		NetAmount:     dec("4000"),
		Items: []invoice.LineItem{
			{Description: "Silver anklet", Type: "SILVER", Weight: &silverWeight, Rate: dec("80")},
		},
	})
	// itemless invoice, whole amount lands in its own metal bucket
	seedInvoice(t, tdb, invoice.Invoice{
		InvoiceNumber: "INV-2024-0003",
		TenantID:      "shop-one",
		CustomerName:  "Kavita Rao",
		IssueDate:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:        "PAID",
		PaymentMethod: "CARD",
		Type:          "GOLD_24K",
		GrossAmount:   dec("90000"),
		NetAmount:     dec("90000"),
	})
	seedInvoice(t, tdb, invoice.Invoice{
		InvoiceNumber: "INV-2024-0500",
		TenantID:      "shop-two",
		CustomerName:  "Priya Sharma",
		IssueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:        "PAID",
		PaymentMethod: "UPI",
		Type:          "GOLD_22K",
		GrossAmount:   dec("11111"),
		NetAmount:     dec("11111"),
	})
}

func TestSalesReport_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	seedReportInvoices(t, testDB)

	service := reportapp.NewSalesReportService(persistence.NewGormSalesReportRepository(testDB.DB))
	ctx := context.Background()

	yearQuery := reportapp.SalesReportQuery{
		DateFilter: "CUSTOM",
		FromDate:   "2024-01-01",
		ToDate:     "2024-12-31",
		Size:       10,
	}

	t.Run("full year report for one tenant", func(t *testing.T) {
		resp, err := service.GetSalesReport(ctx, "shop-one", yearQuery)
		require.NoError(t, err)

		assert.Equal(t, int64(3), resp.Summary.TotalInvoices)
		assert.InDelta(t, 119000, resp.Summary.TotalSalesAmount, 0.001)
		assert.InDelta(t, 500, resp.Summary.TotalGstCollected, 0.001)
		assert.InDelta(t, 10.5, resp.Summary.TotalGoldSoldGrams, 0.001)
		assert.InDelta(t, 50, resp.Summary.TotalSilverSoldGrams, 0.001)

		require.Len(t, resp.SalesTrend, 3)
		assert.Equal(t, "2024-03-10", resp.SalesTrend[0].Date)
		assert.Equal(t, "2024-06-01", resp.SalesTrend[2].Date)

		require.Len(t, resp.PaymentDistribution, 3)
		assert.Equal(t, "Card", resp.PaymentDistribution[0].PaymentMethod)
		assert.InDelta(t, 90000, resp.PaymentDistribution[0].Amount, 0.001)
		assert.Equal(t, "UPI", resp.PaymentDistribution[1].PaymentMethod)
		assert.Equal(t, "Cash", resp.PaymentDistribution[2].PaymentMethod)

		require.Len(t, resp.MetalComparison, 3)
		assert.Equal(t, "Gold 24K", resp.MetalComparison[0].Category)
		assert.InDelta(t, 90000, resp.MetalComparison[0].Amount, 0.001)
		assert.InDelta(t, 0, resp.MetalComparison[0].Weight, 0.001)
		assert.Equal(t, "Gold 22K", resp.MetalComparison[1].Category)
		assert.InDelta(t, 10.5, resp.MetalComparison[1].Weight, 0.001)
		assert.Equal(t, "Silver", resp.MetalComparison[2].Category)

		// rows default to issue date descending
		require.Len(t, resp.Rows, 3)
		assert.Equal(t, "INV-2024-0003", resp.Rows[0].InvoiceNumber)
		assert.Equal(t, "2024-06-01", resp.Rows[0].Date)
		assert.InDelta(t, 500, resp.Rows[2].Gst, 0.001)
		assert.Equal(t, int64(3), resp.TotalElements)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("rows page while aggregates cover the full set", func(t *testing.T) {
		query := yearQuery
		query.Size = 2

		resp, err := service.GetSalesReport(ctx, "shop-one", query)
		require.NoError(t, err)

		assert.Equal(t, int64(3), resp.Summary.TotalInvoices)
		assert.Len(t, resp.Rows, 2)
		assert.Equal(t, int64(3), resp.TotalElements)
		assert.Equal(t, 2, resp.TotalPages)
	})

	t.Run("tenant isolation", func(t *testing.T) {
		resp, err := service.GetSalesReport(ctx, "shop-two", yearQuery)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.Summary.TotalInvoices)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "INV-2024-0500", resp.Rows[0].InvoiceNumber)
	})

	t.Run("metal synonym narrows rows and aggregates together", func(t *testing.T) {
		query := yearQuery
		query.MetalType = "gold"

		resp, err := service.GetSalesReport(ctx, "shop-one", query)
		require.NoError(t, err)

		assert.Equal(t, int64(2), resp.Summary.TotalInvoices)
		assert.InDelta(t, 115000, resp.Summary.TotalSalesAmount, 0.001)
		assert.Len(t, resp.Rows, 2)
	})

	t.Run("search matches customer names case-insensitively", func(t *testing.T) {
		query := yearQuery
		query.Search = "priya"

		resp, err := service.GetSalesReport(ctx, "shop-one", query)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.Summary.TotalInvoices)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "Priya Sharma", resp.Rows[0].CustomerName)
	})

	t.Run("swapped custom bounds still select the interval", func(t *testing.T) {
		query := reportapp.SalesReportQuery{
			DateFilter: "CUSTOM",
			FromDate:   "2024-12-31",
			ToDate:     "2024-01-01",
			Size:       10,
		}

		resp, err := service.GetSalesReport(ctx, "shop-one", query)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Summary.TotalInvoices)
	})

	t.Run("unsupported salesperson yields the empty report", func(t *testing.T) {
		query := yearQuery
		query.Salesperson = "Ramesh"

		resp, err := service.GetSalesReport(ctx, "shop-one", query)
		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.Summary.TotalInvoices)
		assert.Empty(t, resp.Rows)
		assert.Equal(t, 0, resp.TotalPages)
	})
}
