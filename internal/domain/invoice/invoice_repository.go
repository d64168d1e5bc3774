package invoice

import "context"

// InvoiceRepository defines the persistence contract for the invoice aggregate
type InvoiceRepository interface {
	// Save persists the invoice together with all its items in one transaction
	Save(ctx context.Context, invoice *Invoice) error

	// FindByID finds an invoice by its ID, items in persisted order.
	// Returns a NOT_FOUND domain error when no invoice matches.
	FindByID(ctx context.Context, id string) (*Invoice, error)
}
