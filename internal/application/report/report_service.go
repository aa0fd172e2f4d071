package report

import (
	"context"
	"strings"
	"time"

	"github.com/luxegem/backend/internal/domain/report"
	"github.com/luxegem/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// fallbackTenant scopes requests that arrive without any tenant identity.
const fallbackTenant = "admin"

// SalesReportService assembles sales reports from the invoice store.
type SalesReportService struct {
	repo report.SalesReportRepository
	now  func() time.Time
}

// NewSalesReportService creates a new SalesReportService.
func NewSalesReportService(repo report.SalesReportRepository) *SalesReportService {
	return &SalesReportService{repo: repo, now: time.Now}
}

// SalesReportQuery carries the raw request inputs. Every field is optional;
// unusable values degrade to defaults instead of failing the request.
type SalesReportQuery struct {
	DateFilter    string
	FromDate      string
	ToDate        string
	Search        string
	PaymentMethod string
	MetalType     string
	Salesperson   string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Page          int
	Size          int
	SortBy        string
	SortDir       string
}

// SalesSummaryResponse is the whole-set aggregate block.
type SalesSummaryResponse struct {
	TotalSalesAmount     float64 `json:"totalSalesAmount"`
	TotalInvoices        int64   `json:"totalInvoices"`
	TotalGstCollected    float64 `json:"totalGstCollected"`
	TotalGoldSoldGrams   float64 `json:"totalGoldSoldGrams"`
	TotalSilverSoldGrams float64 `json:"totalSilverSoldGrams"`
}

// SalesTrendResponse is one per-date trend point.
type SalesTrendResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// PaymentDistributionResponse is one payment-method share.
type PaymentDistributionResponse struct {
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	InvoiceCount  int64   `json:"invoiceCount"`
}

// MetalComparisonResponse is one metal category bucket.
type MetalComparisonResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Weight   float64 `json:"weight"`
}

// SalesRowResponse is one invoice in the paged row view.
type SalesRowResponse struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	PaymentMethod string  `json:"paymentMethod"`
	MetalType     string  `json:"metalType"`
	TotalWeight   float64 `json:"totalWeight"`
	Gst           float64 `json:"gst"`
	NetAmount     float64 `json:"netAmount"`
	Salesperson   string  `json:"salesperson"`
}

// SalesReportResponse is the assembled report payload.
type SalesReportResponse struct {
	Summary             SalesSummaryResponse          `json:"summary"`
	SalesTrend          []SalesTrendResponse          `json:"salesTrend"`
	PaymentDistribution []PaymentDistributionResponse `json:"paymentDistribution"`
	MetalComparison     []MetalComparisonResponse     `json:"metalComparison"`
	Rows                []SalesRowResponse            `json:"rows"`
	Page                int                           `json:"page"`
	Size                int                           `json:"size"`
	TotalElements       int64                         `json:"totalElements"`
	TotalPages          int                           `json:"totalPages"`
}

// GetSalesReport builds the full sales report for one tenant. Aggregates and
// paged rows come from a single storage snapshot.
func (s *SalesReportService) GetSalesReport(ctx context.Context, tenantID string, query SalesReportQuery) (*SalesReportResponse, error) {
	if strings.TrimSpace(tenantID) == "" {
		tenantID = fallbackTenant
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "sales_report", "get",
		attribute.String("tenant_id", tenantID),
		attribute.String("date_filter", query.DateFilter),
	)
	defer span.End()

	page := report.ClampPage(query.Page, query.Size)
	sort := report.SortSpec{
		Field:     report.ResolveSortField(query.SortBy),
		Direction: report.ResolveSortDirection(query.SortDir),
	}

	if !report.SalespersonSupported(query.Salesperson) {
		return emptyReport(page), nil
	}

	dateRange := report.ParseDateFilter(query.DateFilter).
		Resolve(s.now().UTC(), query.FromDate, query.ToDate)

	filter := report.Filter{
		TenantID:      tenantID,
		Range:         dateRange,
		Search:        query.Search,
		PaymentMethod: query.PaymentMethod,
		MetalType:     query.MetalType,
		MinAmount:     query.MinAmount,
		MaxAmount:     query.MaxAmount,
	}

	var result report.SalesReport
	err := s.repo.View(ctx, func(view report.ReportView) error {
		all, err := view.FindAll(filter)
		if err != nil {
			return err
		}

		pageRows, total, err := view.FindPage(filter, sort, page)
		if err != nil {
			return err
		}

		rows := make([]report.SalesRow, len(pageRows))
		for i := range pageRows {
			rows[i] = report.ToRow(&pageRows[i])
		}

		result = report.SalesReport{
			Summary:             report.BuildSummary(all),
			Trend:               report.BuildSalesTrend(all),
			PaymentDistribution: report.BuildPaymentDistribution(all),
			MetalComparison:     report.BuildMetalComparison(all),
			Rows:                rows,
			Page:                page.Page,
			Size:                page.Size,
			TotalElements:       total,
			TotalPages:          totalPages(total, page.Size),
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return toResponse(&result), nil
}

// emptyReport is the well-formed zero report returned for unsupported
// salesperson filters.
func emptyReport(page report.PageRequest) *SalesReportResponse {
	return &SalesReportResponse{
		SalesTrend:          []SalesTrendResponse{},
		PaymentDistribution: []PaymentDistributionResponse{},
		MetalComparison:     []MetalComparisonResponse{},
		Rows:                []SalesRowResponse{},
		Page:                page.Page,
		Size:                page.Size,
	}
}

func totalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

func toResponse(r *report.SalesReport) *SalesReportResponse {
	trend := make([]SalesTrendResponse, len(r.Trend))
	for i, t := range r.Trend {
		trend[i] = SalesTrendResponse{
			Date:   t.Date.Format("2006-01-02"),
			Amount: toFloat64(t.Amount),
			Count:  t.Count,
		}
	}

	distribution := make([]PaymentDistributionResponse, len(r.PaymentDistribution))
	for i, d := range r.PaymentDistribution {
		distribution[i] = PaymentDistributionResponse{
			PaymentMethod: d.PaymentMethod,
			Amount:        toFloat64(d.Amount),
			InvoiceCount:  d.InvoiceCount,
		}
	}

	comparison := make([]MetalComparisonResponse, len(r.MetalComparison))
	for i, m := range r.MetalComparison {
		comparison[i] = MetalComparisonResponse{
			Category: m.Category,
			Amount:   toFloat64(m.Amount),
			Weight:   toFloat64(m.Weight),
		}
	}

	rows := make([]SalesRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = SalesRowResponse{
			InvoiceNumber: row.InvoiceNumber,
			Date:          row.Date.Format("2006-01-02"),
			CustomerName:  row.CustomerName,
			PaymentMethod: row.PaymentMethod,
			MetalType:     row.MetalType,
			TotalWeight:   toFloat64(row.TotalWeight),
			Gst:           toFloat64(row.GST),
			NetAmount:     toFloat64(row.NetAmount),
			Salesperson:   row.Salesperson,
		}
	}

	return &SalesReportResponse{
		Summary: SalesSummaryResponse{
			TotalSalesAmount:     toFloat64(r.Summary.TotalSalesAmount),
			TotalInvoices:        r.Summary.TotalInvoices,
			TotalGstCollected:    toFloat64(r.Summary.TotalGSTCollected),
			TotalGoldSoldGrams:   toFloat64(r.Summary.TotalGoldSoldGrams),
			TotalSilverSoldGrams: toFloat64(r.Summary.TotalSilverSoldGrams),
		},
		SalesTrend:          trend,
		PaymentDistribution: distribution,
		MetalComparison:     comparison,
		Rows:                rows,
		Page:                r.Page,
		Size:                r.Size,
		TotalElements:       r.TotalElements,
		TotalPages:          r.TotalPages,
	}
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
