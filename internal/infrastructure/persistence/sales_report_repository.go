package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/luxegem/backend/internal/domain/report"
	"github.com/luxegem/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements report.SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// readSnapshotOpts pins both report reads to one repeatable-read snapshot so
// concurrent writes cannot make the aggregates and the paged rows disagree.
var readSnapshotOpts = &sql.TxOptions{
	Isolation: sql.LevelRepeatableRead,
	ReadOnly:  true,
}

// View runs fn against a single read-only snapshot of the invoice records.
func (r *GormSalesReportRepository) View(ctx context.Context, fn func(report.ReportView) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormReportView{tx: tx})
	}, readSnapshotOpts)
}

// gormReportView translates the domain filter clauses to SQL. It is only
// valid for the lifetime of the wrapping transaction.
type gormReportView struct {
	tx *gorm.DB
}

// sortColumns whitelists the orderable columns per sort field.
var sortColumns = map[report.SortField]string{
	report.SortFieldInvoiceNumber: "invoice_number",
	report.SortFieldIssueDate:     "issue_date",
	report.SortFieldCustomer:      "customer_name",
	report.SortFieldPaymentMethod: "payment_method",
	report.SortFieldType:          "type",
	report.SortFieldNetAmount:     "net_amount",
}

func (v *gormReportView) FindAll(filter report.Filter) ([]invoice.Invoice, error) {
	var records []models.InvoiceModel
	err := v.filtered(filter).
		Preload("Items", itemOrder).
		Order("issue_date ASC, invoice_number ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainInvoices(records), nil
}

func (v *gormReportView) FindPage(filter report.Filter, spec report.SortSpec, page report.PageRequest) ([]invoice.Invoice, int64, error) {
	var total int64
	if err := v.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []invoice.Invoice{}, 0, nil
	}

	column, ok := sortColumns[spec.Field]
	if !ok {
		column = "issue_date"
	}
	direction := "DESC"
	if spec.Direction == report.SortAsc {
		direction = "ASC"
	}

	var records []models.InvoiceModel
	err := v.filtered(filter).
		Preload("Items", itemOrder).
		Order(fmt.Sprintf("%s %s, invoice_number ASC", column, direction)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return toDomainInvoices(records), total, nil
}

// filtered applies every clause of the composite filter to a fresh query.
func (v *gormReportView) filtered(filter report.Filter) *gorm.DB {
	q := v.tx.Model(&models.InvoiceModel{})

	for _, clause := range filter.Clauses() {
		switch c := clause.(type) {
		case report.TenantClause:
			q = q.Where("LOWER(tenant_id) = ?", c.TenantID)
		case report.DateRangeClause:
			q = q.Where("issue_date BETWEEN ? AND ?", c.From, c.To)
		case report.SearchClause:
			term := "%" + escapeLike(c.Term) + "%"
			q = q.Where("(LOWER(invoice_number) LIKE ? OR LOWER(customer_name) LIKE ?)", term, term)
		case report.PaymentMethodClause:
			q = q.Where("LOWER(payment_method) = ?", c.Method)
		case report.MetalPrefixClause:
			q = q.Where("UPPER(type) LIKE ?", escapeLike(c.Prefix)+"%")
		case report.AmountRangeClause:
			if c.Min != nil {
				q = q.Where("net_amount >= ?", *c.Min)
			}
			if c.Max != nil {
				q = q.Where("net_amount <= ?", *c.Max)
			}
		}
	}

	return q
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func toDomainInvoices(records []models.InvoiceModel) []invoice.Invoice {
	invoices := make([]invoice.Invoice, len(records))
	for i := range records {
		invoices[i] = records[i].ToDomain()
	}
	return invoices
}

// escapeLike neutralizes LIKE wildcards in user-supplied terms.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
