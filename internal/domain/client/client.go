package client

import (
	"time"

	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// Client represents a registered client in the client context.
// It is read-only from the checkout flow's perspective.
type Client struct {
	ID        valueobject.ID
	Name      string
	Email     string
	Document  string
	Address   valueobject.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new client with required fields.
// An empty id gets a freshly generated identifier.
func NewClient(id valueobject.ID, name, email, document string, address valueobject.Address) (*Client, error) {
	if id.IsEmpty() {
		id = valueobject.GenerateID()
	}
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if email == "" {
		return nil, shared.NewValidationError("Email is required")
	}
	if document == "" {
		return nil, shared.NewValidationError("Document is required")
	}
	if address.IsEmpty() {
		return nil, shared.NewValidationError("Address is required")
	}

	now := time.Now()
	return &Client{
		ID:        id,
		Name:      name,
		Email:     email,
		Document:  document,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
