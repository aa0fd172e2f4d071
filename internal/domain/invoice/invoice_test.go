package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoice_GSTAmount(t *testing.T) {
	t.Run("derives gst from net, gross and discount", func(t *testing.T) {
		inv := Invoice{
			GrossAmount: dec("10000.00"),
			NetAmount:   dec("10250.00"),
			Discount:    dec("50.00"),
		}
		// 10250 - 10000 + 50
		assert.True(t, dec("300.00").Equal(inv.GSTAmount()))
	})

	t.Run("clamps negative gst to zero", func(t *testing.T) {
		inv := Invoice{
			GrossAmount: dec("10000.00"),
			NetAmount:   dec("9000.00"),
			Discount:    dec("0"),
		}
		assert.True(t, inv.GSTAmount().IsZero())
	})

	t.Run("zero amounts yield zero gst", func(t *testing.T) {
		var inv Invoice
		assert.True(t, inv.GSTAmount().IsZero())
	})
}

func TestInvoice_TotalItemWeight(t *testing.T) {
	w1 := dec("10.5")
	w2 := dec("4.5")

	t.Run("sums tracked weights", func(t *testing.T) {
		inv := Invoice{Items: []LineItem{{Weight: &w1}, {Weight: &w2}}}
		assert.True(t, dec("15").Equal(inv.TotalItemWeight()))
	})

	t.Run("untracked weight counts as zero", func(t *testing.T) {
		inv := Invoice{Items: []LineItem{{Weight: &w1}, {Weight: nil}}}
		assert.True(t, w1.Equal(inv.TotalItemWeight()))
	})

	t.Run("no items", func(t *testing.T) {
		var inv Invoice
		assert.True(t, inv.TotalItemWeight().IsZero())
	})
}
