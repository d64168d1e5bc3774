package models

import (
	"time"

	"github.com/storely/backend/internal/domain/client"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// ClientModel is the persistence model for the Client domain entity.
// The address is stored as a JSON document through the value object's
// Valuer/Scanner implementation.
type ClientModel struct {
	ID        string              `gorm:"type:varchar(36);primary_key"`
	Name      string              `gorm:"type:varchar(200);not null"`
	Email     string              `gorm:"type:varchar(200);not null"`
	Document  string              `gorm:"type:varchar(50);not null"`
	Address   valueobject.Address `gorm:"type:jsonb;not null"`
	CreatedAt time.Time           `gorm:"not null"`
	UpdatedAt time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		ID:        valueobject.NewID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Document:  m.Document,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *client.Client) {
	m.ID = c.ID.Value()
	m.Name = c.Name
	m.Email = c.Email
	m.Document = c.Document
	m.Address = c.Address
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
