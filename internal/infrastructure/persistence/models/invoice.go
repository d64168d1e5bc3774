package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/invoice"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	ID        string              `gorm:"type:varchar(36);primary_key"`
	Name      string              `gorm:"type:varchar(200);not null"`
	Document  string              `gorm:"type:varchar(50);not null"`
	Address   valueobject.Address `gorm:"type:jsonb;not null"`
	CreatedAt time.Time           `gorm:"not null"`
	UpdatedAt time.Time           `gorm:"not null"`

	Items []InvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is the persistence model for an invoice line item.
// Position records the insertion order so items come back in the same
// order they were billed.
type InvoiceItemModel struct {
	ID        string          `gorm:"type:varchar(36);primary_key"`
	InvoiceID string          `gorm:"type:varchar(36);not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Position  int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain Invoice aggregate.
// Items are assumed to be loaded ordered by position.
func (m *InvoiceModel) ToDomain() *invoice.Invoice {
	items := make([]invoice.InvoiceItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, invoice.InvoiceItem{
			ID:    valueobject.NewID(item.ID),
			Name:  item.Name,
			Price: item.Price,
		})
	}
	return &invoice.Invoice{
		ID:        valueobject.NewID(m.ID),
		Name:      m.Name,
		Document:  m.Document,
		Address:   m.Address,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Invoice aggregate.
func (m *InvoiceModel) FromDomain(inv *invoice.Invoice) {
	m.ID = inv.ID.Value()
	m.Name = inv.Name
	m.Document = inv.Document
	m.Address = inv.Address
	m.CreatedAt = inv.CreatedAt
	m.UpdatedAt = inv.UpdatedAt

	m.Items = make([]InvoiceItemModel, 0, len(inv.Items))
	for i, item := range inv.Items {
		m.Items = append(m.Items, InvoiceItemModel{
			ID:        item.ID.Value(),
			InvoiceID: m.ID,
			Name:      item.Name,
			Price:     item.Price,
			Position:  i,
		})
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice aggregate.
func InvoiceModelFromDomain(inv *invoice.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}
