package checkout

import (
	"context"

	"github.com/shopspring/decimal"
	catalogapp "github.com/storely/backend/internal/application/catalog"
	clientapp "github.com/storely/backend/internal/application/client"
	invoiceapp "github.com/storely/backend/internal/application/invoice"
	paymentapp "github.com/storely/backend/internal/application/payment"
	"github.com/storely/backend/internal/domain/payment"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// Service orchestrates an order across the client, catalog, payment and
// invoice contexts. The pipeline is linear with early exit and no
// compensation: a failed step leaves earlier writes in place.
type Service struct {
	clients  clientapp.Facade
	products catalogapp.Facade
	payments paymentapp.Facade
	invoices invoiceapp.Facade
	idGen    valueobject.IDGenerator
}

// ServiceOption configures a checkout Service
type ServiceOption func(*Service)

// WithIDGenerator overrides the order identifier generator
func WithIDGenerator(gen valueobject.IDGenerator) ServiceOption {
	return func(s *Service) {
		s.idGen = gen
	}
}

// NewService creates a checkout Service wired to the context facades
func NewService(clients clientapp.Facade, products catalogapp.Facade, payments paymentapp.Facade, invoices invoiceapp.Facade, opts ...ServiceOption) *Service {
	s := &Service{
		clients:  clients,
		products: products,
		payments: payments,
		invoices: invoices,
		idGen:    valueobject.DefaultIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder places an order for a client over the selected products.
// A declined payment is a successful order without an invoice.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error) {
	if len(input.Products) == 0 {
		return nil, shared.NewValidationError("No products selected")
	}

	buyer, err := s.clients.Find(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	// Availability gate only. Stock is never reserved or decremented,
	// so concurrent orders can all pass on the same last unit.
	for _, ref := range input.Products {
		stock, err := s.products.CheckStock(ctx, ref.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				return nil, shared.NewValidationError("Product " + ref.ProductID + " is not available in stock")
			}
			return nil, err
		}
		if stock.Stock <= 0 {
			return nil, shared.NewValidationError("Product " + ref.ProductID + " is not available in stock")
		}
	}

	total := decimal.Zero
	items := make([]invoiceapp.ItemInput, 0, len(input.Products))
	for _, ref := range input.Products {
		product, err := s.products.Find(ctx, ref.ProductID)
		if err != nil {
			return nil, err
		}
		price := decimal.NewFromFloat(product.SalesPrice)
		total = total.Add(price)
		items = append(items, invoiceapp.ItemInput{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.SalesPrice,
		})
	}

	orderID := s.idGen()

	transaction, err := s.payments.Process(ctx, paymentapp.ProcessInput{
		OrderID: orderID,
		Amount:  total.InexactFloat64(),
	})
	if err != nil {
		return nil, err
	}

	output := &PlaceOrderOutput{
		ID:       orderID,
		Total:    total.InexactFloat64(),
		Products: input.Products,
	}

	if transaction.Status == string(payment.TransactionStatusApproved) {
		generated, err := s.invoices.Generate(ctx, invoiceapp.GenerateInput{
			Name:     buyer.Name,
			Document: buyer.Document,
			Address:  invoiceapp.AddressDTO(buyer.Address),
			Items:    items,
		})
		if err != nil {
			return nil, err
		}
		output.Invoice = &InvoiceRef{ID: generated.ID}
	}

	return output, nil
}
