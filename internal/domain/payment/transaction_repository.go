package payment

import "context"

// TransactionRepository defines the persistence contract for payment transactions
type TransactionRepository interface {
	// Save persists a processed transaction
	Save(ctx context.Context, transaction *Transaction) error

	// FindByID finds a transaction by its ID.
	// Returns a NOT_FOUND domain error when no record matches.
	FindByID(ctx context.Context, id string) (*Transaction, error)
}
