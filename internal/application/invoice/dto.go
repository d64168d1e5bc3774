package invoice

import (
	"time"

	"github.com/storely/backend/internal/domain/invoice"
)

// AddressDTO carries the billing address for invoice generation
type AddressDTO struct {
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zipCode" binding:"required"`
}

// ItemInput is a billed line submitted for invoice generation
type ItemInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GenerateInput is the payload for generating an invoice.
// The ID is auto-generated when omitted.
type GenerateInput struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Document string      `json:"document"`
	Address  AddressDTO  `json:"address"`
	Items    []ItemInput `json:"items"`
}

// ItemOutput is an invoice line in an output snapshot
type ItemOutput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// InvoiceOutput is an invoice snapshot exposed to callers
type InvoiceOutput struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Document  string       `json:"document"`
	Address   AddressDTO   `json:"address"`
	Items     []ItemOutput `json:"items"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ToInvoiceOutput converts a domain invoice to its output representation
func ToInvoiceOutput(inv *invoice.Invoice) InvoiceOutput {
	items := make([]ItemOutput, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, ItemOutput{
			ID:    item.ID.Value(),
			Name:  item.Name,
			Price: item.Price.InexactFloat64(),
		})
	}
	return InvoiceOutput{
		ID:       inv.ID.Value(),
		Name:     inv.Name,
		Document: inv.Document,
		Address: AddressDTO{
			Street:     inv.Address.Street(),
			Number:     inv.Address.Number(),
			Complement: inv.Address.Complement(),
			City:       inv.Address.City(),
			State:      inv.Address.State(),
			ZipCode:    inv.Address.ZipCode(),
		},
		Items:     items,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}
