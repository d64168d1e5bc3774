package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/payment"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// TransactionModel is the persistence model for the Transaction domain entity.
type TransactionModel struct {
	ID        string          `gorm:"type:varchar(36);primary_key"`
	OrderID   string          `gorm:"type:varchar(36);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status    string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *payment.Transaction {
	return &payment.Transaction{
		ID:        valueobject.NewID(m.ID),
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Status:    payment.TransactionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(t *payment.Transaction) {
	m.ID = t.ID.Value()
	m.OrderID = t.OrderID
	m.Amount = t.Amount
	m.Status = string(t.Status)
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction entity.
func TransactionModelFromDomain(t *payment.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(t)
	return m
}
