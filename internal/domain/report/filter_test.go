package report

import (
	"testing"
	"time"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func sampleInvoice() invoice.Invoice {
	return invoice.Invoice{
		InvoiceNumber: "INV-2024-0042",
		TenantID:      "Shop-One",
		CustomerName:  "Priya Sharma",
		IssueDate:     date(2024, time.March, 10),
		PaymentMethod: "UPI",
		Type:          "GOLD_22K",
		NetAmount:     dec("25000"),
	}
}

func TestFilter_Clauses(t *testing.T) {
	t.Run("tenant and date range are always present", func(t *testing.T) {
		f := Filter{TenantID: "shop-one", Range: DateRange{From: date(2024, time.March, 1), To: date(2024, time.March, 31)}}
		assert.Len(t, f.Clauses(), 2)
	})

	t.Run("ALL and blank disable the optional dimensions", func(t *testing.T) {
		f := Filter{
			TenantID:      "shop-one",
			Range:         DateRange{From: date(2024, time.March, 1), To: date(2024, time.March, 31)},
			PaymentMethod: "ALL",
			MetalType:     "all",
			Search:        "   ",
		}
		assert.Len(t, f.Clauses(), 2)
	})

	t.Run("every populated dimension contributes one clause", func(t *testing.T) {
		f := Filter{
			TenantID:      "shop-one",
			Range:         DateRange{From: date(2024, time.March, 1), To: date(2024, time.March, 31)},
			Search:        "priya",
			PaymentMethod: "upi",
			MetalType:     "GOLD",
			MinAmount:     decPtr("100"),
		}
		assert.Len(t, f.Clauses(), 5)
	})
}

func TestFilter_Matches(t *testing.T) {
	base := Filter{
		TenantID: "shop-one",
		Range:    DateRange{From: date(2024, time.March, 1), To: date(2024, time.March, 31)},
	}

	t.Run("tenant scope is case-insensitive exact", func(t *testing.T) {
		inv := sampleInvoice()
		assert.True(t, base.Matches(&inv))

		other := base
		other.TenantID = "shop-two"
		assert.False(t, other.Matches(&inv))
	})

	t.Run("date range is inclusive at both ends", func(t *testing.T) {
		inv := sampleInvoice()
		inv.IssueDate = date(2024, time.March, 1)
		assert.True(t, base.Matches(&inv))
		inv.IssueDate = date(2024, time.March, 31)
		assert.True(t, base.Matches(&inv))
		inv.IssueDate = date(2024, time.April, 1)
		assert.False(t, base.Matches(&inv))
	})

	t.Run("search matches invoice number or customer", func(t *testing.T) {
		f := base
		f.Search = "priya"
		inv := sampleInvoice()
		assert.True(t, f.Matches(&inv))

		f.Search = "0042"
		assert.True(t, f.Matches(&inv))

		f.Search = "nobody"
		assert.False(t, f.Matches(&inv))
	})

	t.Run("payment method is exact, not substring", func(t *testing.T) {
		f := base
		f.PaymentMethod = "upi"
		inv := sampleInvoice()
		assert.True(t, f.Matches(&inv))

		f.PaymentMethod = "up"
		assert.False(t, f.Matches(&inv))
	})

	t.Run("metal synonym matches by prefix", func(t *testing.T) {
		f := base
		f.MetalType = "gold"
		inv := sampleInvoice()
		assert.True(t, f.Matches(&inv))

		f.MetalType = "SILVER"
		assert.False(t, f.Matches(&inv))

		// Unrecognized tokens are still used verbatim as a prefix.
		f.MetalType = "GOLD_22"
		assert.True(t, f.Matches(&inv))
	})

	t.Run("amount bounds are inclusive and independent", func(t *testing.T) {
		f := base
		f.MinAmount = decPtr("25000")
		inv := sampleInvoice()
		assert.True(t, f.Matches(&inv))

		f.MaxAmount = decPtr("24999.99")
		assert.False(t, f.Matches(&inv))

		f = base
		f.MaxAmount = decPtr("25000")
		assert.True(t, f.Matches(&inv))
	})
}
