package payment

import "context"

// Facade exposes the payment context to other contexts
type Facade interface {
	Process(ctx context.Context, input ProcessInput) (*TransactionOutput, error)
}
