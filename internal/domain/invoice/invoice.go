package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// InvoiceItem is a billed line owned exclusively by its invoice.
// Items are created and destroyed with the invoice, never independently.
type InvoiceItem struct {
	ID    valueobject.ID
	Name  string
	Price decimal.Decimal
}

// NewInvoiceItem creates an invoice line item
func NewInvoiceItem(id valueobject.ID, name string, price decimal.Decimal) (InvoiceItem, error) {
	if id.IsEmpty() {
		id = valueobject.GenerateID()
	}
	if name == "" {
		return InvoiceItem{}, shared.NewValidationError("Item name is required")
	}
	if !price.IsPositive() {
		return InvoiceItem{}, shared.NewValidationError("Item price must be greater than 0")
	}
	return InvoiceItem{
		ID:    id,
		Name:  name,
		Price: price,
	}, nil
}

// Invoice is the aggregate root for the invoice context: a billing snapshot
// plus an ordered sequence of items. Item order is preserved from generation
// through persistence.
type Invoice struct {
	ID        valueobject.ID
	Name      string
	Document  string
	Address   valueobject.Address
	Items     []InvoiceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvoice creates an invoice aggregate with its items
func NewInvoice(id valueobject.ID, name, document string, address valueobject.Address, items []InvoiceItem) (*Invoice, error) {
	if id.IsEmpty() {
		id = valueobject.GenerateID()
	}
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if document == "" {
		return nil, shared.NewValidationError("Document is required")
	}
	if address.IsEmpty() {
		return nil, shared.NewValidationError("Address is required")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("Invoice must have at least one item")
	}

	now := time.Now()
	return &Invoice{
		ID:        id,
		Name:      name,
		Document:  document,
		Address:   address,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Total returns the exact sum of all item prices
func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Price)
	}
	return total
}
