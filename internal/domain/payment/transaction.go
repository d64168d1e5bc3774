package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// TransactionStatus represents the authorization outcome of a transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusDeclined TransactionStatus = "declined"
)

// Transaction represents a payment authorization decision for an order.
// It is created once per payment attempt and immutable after processing.
type Transaction struct {
	ID        valueobject.ID
	OrderID   string
	Amount    decimal.Decimal
	Status    TransactionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a pending transaction for an order amount
func NewTransaction(id valueobject.ID, orderID string, amount decimal.Decimal) (*Transaction, error) {
	if id.IsEmpty() {
		id = valueobject.GenerateID()
	}
	if orderID == "" {
		return nil, shared.NewValidationError("Order ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Amount must be greater than 0")
	}

	now := time.Now()
	return &Transaction{
		ID:        id,
		OrderID:   orderID,
		Amount:    amount,
		Status:    TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Process decides the transaction against the approval threshold.
// Amounts at or above the threshold are approved, everything else declined.
// Decline is a valid business outcome, never an error.
func (t *Transaction) Process(threshold decimal.Decimal) {
	if t.Amount.GreaterThanOrEqual(threshold) {
		t.Status = TransactionStatusApproved
	} else {
		t.Status = TransactionStatusDeclined
	}
	t.UpdatedAt = time.Now()
}

// IsApproved returns true if the transaction was approved
func (t *Transaction) IsApproved() bool {
	return t.Status == TransactionStatusApproved
}
