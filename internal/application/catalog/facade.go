package catalog

import "context"

// Facade exposes the catalog context to other contexts.
// CheckStock reports availability without reserving units.
type Facade interface {
	Add(ctx context.Context, input AddProductInput) (*ProductOutput, error)
	CheckStock(ctx context.Context, productID string) (*StockOutput, error)
	Find(ctx context.Context, productID string) (*ProductOutput, error)
}
