package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/catalog"
)

// AddProductInput is the payload for registering a product
type AddProductInput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalesPrice    float64 `json:"salesPrice"`
	Stock         int     `json:"stock"`
}

// ProductOutput is a product snapshot exposed to callers
type ProductOutput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalesPrice    float64 `json:"salesPrice"`
	Stock         int     `json:"stock"`
}

// StockOutput reports the available stock for a product
type StockOutput struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}

// ToProductOutput converts a domain product to its output representation
func ToProductOutput(p *catalog.Product) ProductOutput {
	return ProductOutput{
		ID:            p.ID.Value(),
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice.InexactFloat64(),
		SalesPrice:    p.SalesPrice.InexactFloat64(),
		Stock:         p.Stock,
	}
}

func priceFromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
