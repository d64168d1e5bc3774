package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() valueobject.Address {
	return valueobject.MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")
}

func testItems(t *testing.T) []InvoiceItem {
	t.Helper()
	i1, err := NewInvoiceItem(valueobject.NewID("1"), "Product 1", decimal.NewFromInt(100))
	require.NoError(t, err)
	i2, err := NewInvoiceItem(valueobject.NewID("2"), "Product 2", decimal.NewFromInt(200))
	require.NoError(t, err)
	return []InvoiceItem{i1, i2}
}

func TestNewInvoiceItem(t *testing.T) {
	t.Run("creates item", func(t *testing.T) {
		item, err := NewInvoiceItem(valueobject.NewID("1"), "Product 1", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, "1", item.ID.Value())
		assert.Equal(t, "Product 1", item.Name)
	})

	t.Run("generates id when omitted", func(t *testing.T) {
		item, err := NewInvoiceItem(valueobject.NewID(""), "Product 1", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.False(t, item.ID.IsEmpty())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := NewInvoiceItem(valueobject.NewID("1"), "", decimal.NewFromInt(100))
		assert.EqualError(t, err, "Item name is required")
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewInvoiceItem(valueobject.NewID("1"), "Product 1", decimal.Zero)
		assert.EqualError(t, err, "Item price must be greater than 0")
	})
}

func TestNewInvoice(t *testing.T) {
	t.Run("creates invoice with items in order", func(t *testing.T) {
		inv, err := NewInvoice(valueobject.NewID("1"), "Invoice 1", "123", testAddress(), testItems(t))
		require.NoError(t, err)

		assert.Equal(t, "1", inv.ID.Value())
		require.Len(t, inv.Items, 2)
		assert.Equal(t, "1", inv.Items[0].ID.Value())
		assert.Equal(t, "2", inv.Items[1].ID.Value())
		assert.False(t, inv.CreatedAt.IsZero())
	})

	t.Run("rejects invoice without items", func(t *testing.T) {
		_, err := NewInvoice(valueobject.NewID("1"), "Invoice 1", "123", testAddress(), nil)
		assert.EqualError(t, err, "Invoice must have at least one item")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewInvoice(valueobject.NewID("1"), "", "123", testAddress(), testItems(t))
		assert.EqualError(t, err, "Name is required")

		_, err = NewInvoice(valueobject.NewID("1"), "Invoice 1", "", testAddress(), testItems(t))
		assert.EqualError(t, err, "Document is required")

		_, err = NewInvoice(valueobject.NewID("1"), "Invoice 1", "123", valueobject.EmptyAddress(), testItems(t))
		assert.EqualError(t, err, "Address is required")
	})
}

func TestInvoice_Total(t *testing.T) {
	inv, err := NewInvoice(valueobject.NewID("1"), "Invoice 1", "123", testAddress(), testItems(t))
	require.NoError(t, err)
	assert.True(t, inv.Total().Equal(decimal.NewFromInt(300)))
}
