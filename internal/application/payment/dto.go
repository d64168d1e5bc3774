package payment

import "github.com/storely/backend/internal/domain/payment"

// ProcessInput is the payload for processing an order payment
type ProcessInput struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// TransactionOutput is the result of a processed payment
type TransactionOutput struct {
	TransactionID string  `json:"transactionId"`
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}

// ToTransactionOutput converts a domain transaction to its output representation
func ToTransactionOutput(tr *payment.Transaction) TransactionOutput {
	return TransactionOutput{
		TransactionID: tr.ID.Value(),
		OrderID:       tr.OrderID,
		Amount:        tr.Amount.InexactFloat64(),
		Status:        string(tr.Status),
	}
}
