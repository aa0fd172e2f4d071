package report

import (
	"context"
	"strings"
	"time"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// SortField identifies the record field a paged report is ordered by.
type SortField string

const (
	SortFieldInvoiceNumber SortField = "invoiceNumber"
	SortFieldIssueDate     SortField = "issueDate"
	SortFieldCustomer      SortField = "customerName"
	SortFieldPaymentMethod SortField = "paymentMethod"
	SortFieldType          SortField = "metalType"
	SortFieldNetAmount     SortField = "netAmount"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is a resolved sort order for the paged row view.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// ResolveSortField maps a request sort name onto the whitelisted fields.
// Unknown or missing names default to the issue date.
func ResolveSortField(sortBy string) SortField {
	switch strings.TrimSpace(sortBy) {
	case "invoiceNumber":
		return SortFieldInvoiceNumber
	case "date":
		return SortFieldIssueDate
	case "customerName":
		return SortFieldCustomer
	case "paymentMethod":
		return SortFieldPaymentMethod
	case "metalType":
		return SortFieldType
	case "netAmount":
		return SortFieldNetAmount
	default:
		return SortFieldIssueDate
	}
}

// ResolveSortDirection returns ascending only for an explicit "asc" in any
// case; everything else sorts descending.
func ResolveSortDirection(sortDir string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(sortDir), "asc") {
		return SortAsc
	}
	return SortDesc
}

// PageRequest is a clamped page/size pair.
type PageRequest struct {
	Page int
	Size int
}

// maxPageSize bounds a single page of report rows.
const maxPageSize = 100

// ClampPage clamps the page index to >= 0 and the size to [1, maxPageSize].
// Out-of-range values are never rejected.
func ClampPage(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// SalesSummary aggregates the whole filtered set.
type SalesSummary struct {
	TotalSalesAmount     decimal.Decimal
	TotalInvoices        int64
	TotalGSTCollected    decimal.Decimal
	TotalGoldSoldGrams   decimal.Decimal
	TotalSilverSoldGrams decimal.Decimal
}

// TrendPoint is the sales amount and count for one calendar date.
type TrendPoint struct {
	Date   time.Time
	Amount decimal.Decimal
	Count  int64
}

// PaymentDistribution is the per-payment-method share of the filtered set.
type PaymentDistribution struct {
	PaymentMethod string
	Amount        decimal.Decimal
	InvoiceCount  int64
}

// MetalSales is the apportioned amount and raw weight for one category bucket.
type MetalSales struct {
	Category string
	Amount   decimal.Decimal
	Weight   decimal.Decimal
}

// SalesRow is one invoice in the paged row view.
type SalesRow struct {
	InvoiceNumber string
	Date          time.Time
	CustomerName  string
	PaymentMethod string
	MetalType     string
	TotalWeight   decimal.Decimal
	GST           decimal.Decimal
	NetAmount     decimal.Decimal
	Salesperson   string
}

// SalesReport is the assembled report value. It is produced fresh per request
// and never persisted; rows and aggregates always describe the same filtered
// snapshot.
type SalesReport struct {
	Summary             SalesSummary
	Trend               []TrendPoint
	PaymentDistribution []PaymentDistribution
	MetalComparison     []MetalSales
	Rows                []SalesRow
	Page                int
	Size                int
	TotalElements       int64
	TotalPages          int
}

// ReportView is a read-consistent view over the invoice records. Both reads
// of a report call go through one view so concurrent writes cannot make the
// aggregates and the paged rows disagree.
type ReportView interface {
	// FindAll returns the entire filtered set ascending by issue date.
	FindAll(filter Filter) ([]invoice.Invoice, error)

	// FindPage returns one sorted page of the filtered set plus the total
	// number of matching records.
	FindPage(filter Filter, sort SortSpec, page PageRequest) ([]invoice.Invoice, int64, error)
}

// SalesReportRepository is the storage port for report queries.
type SalesReportRepository interface {
	// View runs fn against a snapshot of the record set. The snapshot is
	// released when fn returns, on success and on error alike.
	View(ctx context.Context, fn func(ReportView) error) error
}
