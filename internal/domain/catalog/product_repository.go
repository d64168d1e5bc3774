package catalog

import "context"

// ProductRepository defines the persistence contract for the product catalog
type ProductRepository interface {
	// Add persists a new product
	Add(ctx context.Context, product *Product) error

	// FindByID finds a product by its ID.
	// Returns a NOT_FOUND domain error when no record matches.
	FindByID(ctx context.Context, id string) (*Product, error)
}
