package report

import (
	"testing"
	"time"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemedInvoice(number string, day int, payment, metal, net string, items ...invoice.LineItem) invoice.Invoice {
	return invoice.Invoice{
		InvoiceNumber: number,
		TenantID:      "shop-one",
		CustomerName:  "Customer",
		IssueDate:     date(2024, time.March, day),
		PaymentMethod: payment,
		Type:          metal,
		GrossAmount:   dec(net),
		NetAmount:     dec(net),
		Items:         items,
	}
}

func item(metal, weight string) invoice.LineItem {
	return invoice.LineItem{Type: metal, Weight: decPtr(weight)}
}

func TestBuildSummary(t *testing.T) {
	invoices := []invoice.Invoice{
		itemedInvoice("INV-1", 1, "Cash", "GOLD_22K", "10000", item("GOLD_22K", "8"), item("SILVER", "20")),
		itemedInvoice("INV-2", 2, "UPI", "SILVER", "5000", item("SILVER", "50")),
		itemedInvoice("INV-3", 3, "Card", "PLATINUM", "3000"),
	}
	invoices[0].GrossAmount = dec("11000")
	invoices[0].Discount = dec("500")

	s := BuildSummary(invoices)

	assert.Equal(t, int64(3), s.TotalInvoices)
	assert.True(t, s.TotalSalesAmount.Equal(dec("18000")), "got %s", s.TotalSalesAmount)
	// Only INV-1 has a GST-bearing gap: max(10000-11000+500, 0) = 0.
	assert.True(t, s.TotalGSTCollected.Equal(dec("0")), "got %s", s.TotalGSTCollected)
	// Weights come from line items only, the itemless platinum invoice adds nothing.
	assert.True(t, s.TotalGoldSoldGrams.Equal(dec("8")), "got %s", s.TotalGoldSoldGrams)
	assert.True(t, s.TotalSilverSoldGrams.Equal(dec("70")), "got %s", s.TotalSilverSoldGrams)
}

func TestBuildSalesTrend(t *testing.T) {
	invoices := []invoice.Invoice{
		itemedInvoice("INV-3", 5, "Cash", "GOLD", "300"),
		itemedInvoice("INV-1", 2, "Cash", "GOLD", "100"),
		itemedInvoice("INV-2", 2, "UPI", "SILVER", "200"),
	}

	trend := BuildSalesTrend(invoices)

	require.Len(t, trend, 2)
	assert.Equal(t, date(2024, time.March, 2), trend[0].Date)
	assert.True(t, trend[0].Amount.Equal(dec("300")))
	assert.Equal(t, int64(2), trend[0].Count)
	assert.Equal(t, date(2024, time.March, 5), trend[1].Date)
	assert.Equal(t, int64(1), trend[1].Count)
}

func TestBuildPaymentDistribution(t *testing.T) {
	invoices := []invoice.Invoice{
		itemedInvoice("INV-1", 1, "upi", "GOLD", "100"),
		itemedInvoice("INV-2", 2, "", "GOLD", "400"),
		itemedInvoice("INV-3", 3, "credit card", "GOLD", "250"),
		itemedInvoice("INV-4", 4, "UPI", "GOLD", "300"),
	}

	dist := BuildPaymentDistribution(invoices)

	require.Len(t, dist, 3)
	// Sorted by amount descending, raw labels normalized first.
	assert.Equal(t, "UPI", dist[0].PaymentMethod)
	assert.True(t, dist[0].Amount.Equal(dec("400")))
	assert.Equal(t, int64(2), dist[0].InvoiceCount)
	assert.Equal(t, "Cash", dist[1].PaymentMethod)
	assert.Equal(t, "Card", dist[2].PaymentMethod)
}

func TestBuildMetalComparison(t *testing.T) {
	t.Run("itemed invoice amount is apportioned by weight", func(t *testing.T) {
		inv := itemedInvoice("INV-1", 1, "Cash", "GOLD_22K", "9000",
			item("GOLD_22K", "6"), item("SILVER", "3"))

		cmp := BuildMetalComparison([]invoice.Invoice{inv})

		require.Len(t, cmp, 2)
		assert.Equal(t, "Gold 22K", cmp[0].Category)
		assert.True(t, cmp[0].Amount.Equal(dec("6000")), "got %s", cmp[0].Amount)
		assert.True(t, cmp[0].Weight.Equal(dec("6")))
		assert.Equal(t, "Silver", cmp[1].Category)
		assert.True(t, cmp[1].Amount.Equal(dec("3000")), "got %s", cmp[1].Amount)

		total := cmp[0].Amount.Add(cmp[1].Amount)
		assert.True(t, total.Equal(inv.NetAmount), "shares must sum to the net amount")
	})

	t.Run("itemless invoice contributes its whole amount with zero weight", func(t *testing.T) {
		inv := itemedInvoice("INV-2", 1, "Cash", "PLATINUM", "4000")

		cmp := BuildMetalComparison([]invoice.Invoice{inv})

		require.Len(t, cmp, 1)
		assert.Equal(t, "Platinum", cmp[0].Category)
		assert.True(t, cmp[0].Amount.Equal(dec("4000")))
		assert.True(t, cmp[0].Weight.IsZero())
	})

	t.Run("itemed invoice with zero total weight contributes no amount", func(t *testing.T) {
		inv := itemedInvoice("INV-3", 1, "Cash", "GOLD_22K", "7000",
			item("GOLD_22K", "0"), invoice.LineItem{Type: "SILVER"})

		cmp := BuildMetalComparison([]invoice.Invoice{inv})

		// No weight to apportion against: the categories still appear but
		// carry neither amount nor weight.
		require.Len(t, cmp, 2)
		for _, m := range cmp {
			assert.True(t, m.Amount.IsZero(), "%s got amount %s", m.Category, m.Amount)
			assert.True(t, m.Weight.IsZero())
		}
	})

	t.Run("categories are sorted by amount descending", func(t *testing.T) {
		invoices := []invoice.Invoice{
			itemedInvoice("INV-1", 1, "Cash", "SILVER", "1000"),
			itemedInvoice("INV-2", 2, "Cash", "GOLD_24K", "8000"),
			itemedInvoice("INV-3", 3, "Cash", "DIAMOND", "5000"),
		}

		cmp := BuildMetalComparison(invoices)

		require.Len(t, cmp, 3)
		assert.Equal(t, "Gold 24K", cmp[0].Category)
		assert.Equal(t, "Diamond", cmp[1].Category)
		assert.Equal(t, "Silver", cmp[2].Category)
	})
}

func TestToRow(t *testing.T) {
	inv := itemedInvoice("INV-1", 15, "upi", "GOLD_22K", "12000",
		item("GOLD_22K", "10.5"))
	inv.GrossAmount = dec("11500")

	row := ToRow(&inv)

	assert.Equal(t, "INV-1", row.InvoiceNumber)
	assert.Equal(t, date(2024, time.March, 15), row.Date)
	assert.Equal(t, "UPI", row.PaymentMethod)
	assert.Equal(t, "Gold 22K", row.MetalType)
	assert.True(t, row.TotalWeight.Equal(dec("10.5")))
	assert.True(t, row.GST.Equal(dec("500")), "got %s", row.GST)
	assert.Equal(t, DefaultSalesperson, row.Salesperson)
}
