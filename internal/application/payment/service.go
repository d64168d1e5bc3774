package payment

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/payment"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// PaymentService implements the payment context facade.
// The approval threshold comes from configuration and is fixed per instance.
type PaymentService struct {
	repo      payment.TransactionRepository
	threshold decimal.Decimal
	idGen     valueobject.IDGenerator
}

// PaymentServiceOption configures a PaymentService
type PaymentServiceOption func(*PaymentService)

// WithIDGenerator overrides the identifier generator
func WithIDGenerator(gen valueobject.IDGenerator) PaymentServiceOption {
	return func(s *PaymentService) {
		s.idGen = gen
	}
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo payment.TransactionRepository, threshold decimal.Decimal, opts ...PaymentServiceOption) *PaymentService {
	s := &PaymentService{
		repo:      repo,
		threshold: threshold,
		idGen:     valueobject.DefaultIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process authorizes a payment for an order and persists the outcome.
// A declined transaction is returned without error.
func (s *PaymentService) Process(ctx context.Context, input ProcessInput) (*TransactionOutput, error) {
	tr, err := payment.NewTransaction(
		valueobject.NewID(s.idGen()),
		input.OrderID,
		decimal.NewFromFloat(input.Amount),
	)
	if err != nil {
		return nil, err
	}

	tr.Process(s.threshold)

	if err := s.repo.Save(ctx, tr); err != nil {
		return nil, err
	}

	output := ToTransactionOutput(tr)
	return &output, nil
}
