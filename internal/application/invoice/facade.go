package invoice

import "context"

// Facade exposes the invoice context to other contexts
type Facade interface {
	Generate(ctx context.Context, input GenerateInput) (*InvoiceOutput, error)
	Find(ctx context.Context, invoiceID string) (*InvoiceOutput, error)
}
