package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a completed sale record. The reporting engine treats invoices as
// immutable inputs: it never mutates them, and lifecycle (creation, update)
// belongs to the billing service that owns the invoices table.
type Invoice struct {
	InvoiceNumber string          `json:"invoice_number"`
	TenantID      string          `json:"-"`
	CustomerName  string          `json:"customer_name"`
	IssueDate     time.Time       `json:"issue_date"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Type          string          `json:"type"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	Discount      decimal.Decimal `json:"discount"`
	MakingCharge  decimal.Decimal `json:"making_charge"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	Items         []LineItem      `json:"items"`
}

// LineItem is a single priced component of an invoice. Weight is nil when the
// item is not weight-tracked.
type LineItem struct {
	Description         string           `json:"description"`
	Type                string           `json:"type"`
	Weight              *decimal.Decimal `json:"weight,omitempty"`
	Rate                decimal.Decimal  `json:"rate"`
	MakingChargePercent decimal.Decimal  `json:"making_charge_percent"`
	GSTRatePercent      decimal.Decimal  `json:"gst_rate_percent"`
}

// ItemWeight returns the item weight, treating untracked weight as zero.
func (li *LineItem) ItemWeight() decimal.Decimal {
	if li.Weight == nil {
		return decimal.Zero
	}
	return *li.Weight
}

// GSTAmount reconstructs the tax component from the stored monetary fields:
// net - gross + discount, floored at zero. GST is derived, not stored; the
// floor hides gross/discount inconsistencies rather than surfacing them,
// matching the observed behavior of the billing service.
func (inv *Invoice) GSTAmount() decimal.Decimal {
	gst := inv.NetAmount.Sub(inv.GrossAmount).Add(inv.Discount)
	if gst.IsNegative() {
		return decimal.Zero
	}
	return gst
}

// TotalItemWeight sums the weight of all tracked line items.
func (inv *Invoice) TotalItemWeight() decimal.Decimal {
	total := decimal.Zero
	for i := range inv.Items {
		total = total.Add(inv.Items[i].ItemWeight())
	}
	return total
}
