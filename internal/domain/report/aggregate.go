package report

import (
	"sort"
	"strings"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// BuildSummary totals the full filtered set. Gold and silver grams are summed
// from line items only; an invoice without items still contributes to the
// amount, count and GST totals but adds no weight.
func BuildSummary(invoices []invoice.Invoice) SalesSummary {
	summary := SalesSummary{
		TotalSalesAmount:     decimal.Zero,
		TotalInvoices:        int64(len(invoices)),
		TotalGSTCollected:    decimal.Zero,
		TotalGoldSoldGrams:   decimal.Zero,
		TotalSilverSoldGrams: decimal.Zero,
	}

	for i := range invoices {
		inv := &invoices[i]
		summary.TotalSalesAmount = summary.TotalSalesAmount.Add(inv.NetAmount)
		summary.TotalGSTCollected = summary.TotalGSTCollected.Add(inv.GSTAmount())

		for j := range inv.Items {
			item := &inv.Items[j]
			itemType := normalizedType(item.Type)
			switch {
			case strings.HasPrefix(itemType, "GOLD"):
				summary.TotalGoldSoldGrams = summary.TotalGoldSoldGrams.Add(item.ItemWeight())
			case strings.HasPrefix(itemType, "SILVER"):
				summary.TotalSilverSoldGrams = summary.TotalSilverSoldGrams.Add(item.ItemWeight())
			}
		}
	}

	return summary
}

// BuildSalesTrend groups the filtered set by issue date and emits one point
// per distinct date, ascending.
func BuildSalesTrend(invoices []invoice.Invoice) []TrendPoint {
	byDate := make(map[string]*TrendPoint)
	for i := range invoices {
		inv := &invoices[i]
		key := inv.IssueDate.Format(isoDateLayout)
		point, ok := byDate[key]
		if !ok {
			point = &TrendPoint{Date: inv.IssueDate, Amount: decimal.Zero}
			byDate[key] = point
		}
		point.Amount = point.Amount.Add(inv.NetAmount)
		point.Count++
	}

	trend := make([]TrendPoint, 0, len(byDate))
	for _, point := range byDate {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// BuildPaymentDistribution groups the filtered set by normalized payment
// method, descending by amount. Groups appear in first-seen order on amount
// ties.
func BuildPaymentDistribution(invoices []invoice.Invoice) []PaymentDistribution {
	index := make(map[string]int)
	distribution := make([]PaymentDistribution, 0)

	for i := range invoices {
		inv := &invoices[i]
		method := NormalizePaymentMethod(inv.PaymentMethod)
		pos, ok := index[method]
		if !ok {
			pos = len(distribution)
			index[method] = pos
			distribution = append(distribution, PaymentDistribution{
				PaymentMethod: method,
				Amount:        decimal.Zero,
			})
		}
		distribution[pos].Amount = distribution[pos].Amount.Add(inv.NetAmount)
		distribution[pos].InvoiceCount++
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Amount.GreaterThan(distribution[j].Amount)
	})
	return distribution
}

// BuildMetalComparison apportions each invoice's net amount across category
// buckets, descending by amount. An invoice with line items distributes its
// amount proportionally to each item's share of the total item weight, and
// each bucket additionally accumulates the raw item weight. An invoice with
// no items attributes its entire amount, and zero weight, to its own type.
func BuildMetalComparison(invoices []invoice.Invoice) []MetalSales {
	index := make(map[string]int)
	comparison := make([]MetalSales, 0)

	accumulate := func(category string, amount, weight decimal.Decimal) {
		pos, ok := index[category]
		if !ok {
			pos = len(comparison)
			index[category] = pos
			comparison = append(comparison, MetalSales{
				Category: category,
				Amount:   decimal.Zero,
				Weight:   decimal.Zero,
			})
		}
		comparison[pos].Amount = comparison[pos].Amount.Add(amount)
		comparison[pos].Weight = comparison[pos].Weight.Add(weight)
	}

	for i := range invoices {
		inv := &invoices[i]

		if len(inv.Items) == 0 {
			accumulate(NormalizeMetal(inv.Type), inv.NetAmount, decimal.Zero)
			continue
		}

		totalWeight := inv.TotalItemWeight()
		for j := range inv.Items {
			item := &inv.Items[j]
			itemWeight := item.ItemWeight()
			share := decimal.Zero
			if totalWeight.IsPositive() {
				share = inv.NetAmount.Mul(itemWeight).Div(totalWeight)
			}
			accumulate(NormalizeMetal(item.Type), share, itemWeight)
		}
	}

	sort.SliceStable(comparison, func(i, j int) bool {
		return comparison[i].Amount.GreaterThan(comparison[j].Amount)
	})
	return comparison
}

// ToRow maps an invoice to its paged row view.
func ToRow(inv *invoice.Invoice) SalesRow {
	return SalesRow{
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.IssueDate,
		CustomerName:  inv.CustomerName,
		PaymentMethod: NormalizePaymentMethod(inv.PaymentMethod),
		MetalType:     NormalizeMetal(inv.Type),
		TotalWeight:   inv.TotalItemWeight(),
		GST:           inv.GSTAmount(),
		NetAmount:     inv.NetAmount,
		Salesperson:   DefaultSalesperson,
	}
}
