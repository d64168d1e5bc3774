package client

import (
	"time"

	"github.com/storely/backend/internal/domain/client"
)

// AddressDTO carries a postal address across the facade boundary
type AddressDTO struct {
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zipCode" binding:"required"`
}

// AddClientInput represents a request to register a client
type AddClientInput struct {
	ID       string     `json:"id"`
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Document string     `json:"document" binding:"required"`
	Address  AddressDTO `json:"address" binding:"required"`
}

// ClientOutput is the flattened client snapshot returned by the facade
type ClientOutput struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Document  string     `json:"document"`
	Address   AddressDTO `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToClientOutput converts a domain client to its facade snapshot
func ToClientOutput(c *client.Client) ClientOutput {
	return ClientOutput{
		ID:       c.ID.Value(),
		Name:     c.Name,
		Email:    c.Email,
		Document: c.Document,
		Address: AddressDTO{
			Street:     c.Address.Street(),
			Number:     c.Address.Number(),
			Complement: c.Address.Complement(),
			City:       c.Address.City(),
			State:      c.Address.State(),
			ZipCode:    c.Address.ZipCode(),
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
