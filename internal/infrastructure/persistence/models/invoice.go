package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for invoice records.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	TenantID      string          `gorm:"size:64;not null;index;uniqueIndex:idx_invoices_tenant_number,priority:1"`
	InvoiceNumber string          `gorm:"size:64;not null;uniqueIndex:idx_invoices_tenant_number,priority:2"`
	CustomerName  string          `gorm:"size:255;not null"`
	IssueDate     time.Time       `gorm:"type:date;not null;index"`
	Status        string          `gorm:"size:32;not null;default:'PAID'"`
	PaymentMethod string          `gorm:"size:64"`
	Type          string          `gorm:"size:64"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0;index"`
	Discount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	MakingCharge  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	GSTRate       decimal.Decimal `gorm:"type:decimal(6,3);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Items []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is the persistence model for invoice line items.
type InvoiceItemModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key"`
	InvoiceID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	Position            int              `gorm:"not null;default:0"`
	Description         string           `gorm:"size:255"`
	Type                string           `gorm:"size:64"`
	Weight              *decimal.Decimal `gorm:"type:decimal(12,3)"`
	Rate                decimal.Decimal  `gorm:"type:decimal(14,2);not null;default:0"`
	MakingChargePercent decimal.Decimal  `gorm:"type:decimal(6,3);not null;default:0"`
	GSTRatePercent      decimal.Decimal  `gorm:"type:decimal(6,3);not null;default:0"`
}

// TableName specifies the table name for InvoiceItemModel
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain invoice
func (m *InvoiceModel) ToDomain() invoice.Invoice {
	items := make([]invoice.LineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = invoice.LineItem{
			Description:         item.Description,
			Type:                item.Type,
			Weight:              item.Weight,
			Rate:                item.Rate,
			MakingChargePercent: item.MakingChargePercent,
			GSTRatePercent:      item.GSTRatePercent,
		}
	}

	return invoice.Invoice{
		InvoiceNumber: m.InvoiceNumber,
		TenantID:      m.TenantID,
		CustomerName:  m.CustomerName,
		IssueDate:     m.IssueDate,
		Status:        m.Status,
		PaymentMethod: m.PaymentMethod,
		Type:          m.Type,
		GrossAmount:   m.GrossAmount,
		NetAmount:     m.NetAmount,
		Discount:      m.Discount,
		MakingCharge:  m.MakingCharge,
		GSTRate:       m.GSTRate,
		Items:         items,
	}
}

// FromDomain populates the persistence model from a domain invoice
func (m *InvoiceModel) FromDomain(inv *invoice.Invoice) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.TenantID = inv.TenantID
	m.InvoiceNumber = inv.InvoiceNumber
	m.CustomerName = inv.CustomerName
	m.IssueDate = inv.IssueDate
	m.Status = inv.Status
	m.PaymentMethod = inv.PaymentMethod
	m.Type = inv.Type
	m.GrossAmount = inv.GrossAmount
	m.NetAmount = inv.NetAmount
	m.Discount = inv.Discount
	m.MakingCharge = inv.MakingCharge
	m.GSTRate = inv.GSTRate

	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = InvoiceItemModel{
			ID:                  uuid.New(),
			InvoiceID:           m.ID,
			Position:            i,
			Description:         item.Description,
			Type:                item.Type,
			Weight:              item.Weight,
			Rate:                item.Rate,
			MakingChargePercent: item.MakingChargePercent,
			GSTRatePercent:      item.GSTRatePercent,
		}
	}
}
