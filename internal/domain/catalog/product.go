package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// Product represents a catalog entry with purchase/sale pricing and stock.
// Stock gates order acceptance but is never decremented by order placement.
type Product struct {
	ID            valueobject.ID
	Name          string
	Description   string
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProduct creates a new product. SalesPrice falls back to PurchasePrice
// when not supplied (zero). Stock must not be negative.
func NewProduct(id valueobject.ID, name, description string, purchasePrice, salesPrice decimal.Decimal, stock int) (*Product, error) {
	if id.IsEmpty() {
		id = valueobject.GenerateID()
	}
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewValidationError("Purchase price must not be negative")
	}
	if salesPrice.IsNegative() {
		return nil, shared.NewValidationError("Sales price must not be negative")
	}
	if stock < 0 {
		return nil, shared.NewValidationError("Stock must not be negative")
	}
	if salesPrice.IsZero() {
		salesPrice = purchasePrice
	}

	now := time.Now()
	return &Product{
		ID:            id,
		Name:          name,
		Description:   description,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		Stock:         stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// InStock returns true if the product has at least one unit available
func (p *Product) InStock() bool {
	return p.Stock > 0
}
