package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/catalog"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	ID            string          `gorm:"type:varchar(36);primary_key"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:            valueobject.NewID(m.ID),
		Name:          m.Name,
		Description:   m.Description,
		PurchasePrice: m.PurchasePrice,
		SalesPrice:    m.SalesPrice,
		Stock:         m.Stock,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID.Value()
	m.Name = p.Name
	m.Description = p.Description
	m.PurchasePrice = p.PurchasePrice
	m.SalesPrice = p.SalesPrice
	m.Stock = p.Stock
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
