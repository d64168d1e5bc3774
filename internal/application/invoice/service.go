package invoice

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storely/backend/internal/domain/invoice"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// InvoiceService implements the invoice context facade
type InvoiceService struct {
	repo  invoice.InvoiceRepository
	idGen valueobject.IDGenerator
}

// InvoiceServiceOption configures an InvoiceService
type InvoiceServiceOption func(*InvoiceService)

// WithIDGenerator overrides the identifier generator
func WithIDGenerator(gen valueobject.IDGenerator) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.idGen = gen
	}
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(repo invoice.InvoiceRepository, opts ...InvoiceServiceOption) *InvoiceService {
	s := &InvoiceService{
		repo:  repo,
		idGen: valueobject.DefaultIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates and persists an invoice with its items.
// The invoice and its items are stored atomically.
func (s *InvoiceService) Generate(ctx context.Context, input GenerateInput) (*InvoiceOutput, error) {
	address, err := valueobject.NewAddress(
		input.Address.Street,
		input.Address.Number,
		input.Address.Complement,
		input.Address.City,
		input.Address.State,
		input.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.InvoiceItem, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := invoice.NewInvoiceItem(valueobject.NewID(in.ID), in.Name, decimal.NewFromFloat(in.Price))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	id := input.ID
	if id == "" {
		id = s.idGen()
	}

	inv, err := invoice.NewInvoice(
		valueobject.NewID(id),
		input.Name,
		input.Document,
		address,
		items,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	output := ToInvoiceOutput(inv)
	return &output, nil
}

// Find returns an invoice snapshot by ID with items in their original order
func (s *InvoiceService) Find(ctx context.Context, invoiceID string) (*InvoiceOutput, error) {
	inv, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	output := ToInvoiceOutput(inv)
	return &output, nil
}
