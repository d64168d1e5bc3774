package catalog

import (
	"context"

	"github.com/storely/backend/internal/domain/catalog"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// ProductService implements the catalog context facade
type ProductService struct {
	repo  catalog.ProductRepository
	idGen valueobject.IDGenerator
}

// ProductServiceOption configures a ProductService
type ProductServiceOption func(*ProductService)

// WithIDGenerator overrides the identifier generator
func WithIDGenerator(gen valueobject.IDGenerator) ProductServiceOption {
	return func(s *ProductService) {
		s.idGen = gen
	}
}

// NewProductService creates a new ProductService
func NewProductService(repo catalog.ProductRepository, opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		repo:  repo,
		idGen: valueobject.DefaultIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a new product in the catalog
func (s *ProductService) Add(ctx context.Context, input AddProductInput) (*ProductOutput, error) {
	id := input.ID
	if id == "" {
		id = s.idGen()
	}

	p, err := catalog.NewProduct(
		valueobject.NewID(id),
		input.Name,
		input.Description,
		priceFromFloat(input.PurchasePrice),
		priceFromFloat(input.SalesPrice),
		input.Stock,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return nil, err
	}

	output := ToProductOutput(p)
	return &output, nil
}

// CheckStock reports the current stock level of a product
func (s *ProductService) CheckStock(ctx context.Context, productID string) (*StockOutput, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &StockOutput{ProductID: p.ID.Value(), Stock: p.Stock}, nil
}

// Find returns a product snapshot by ID
func (s *ProductService) Find(ctx context.Context, productID string) (*ProductOutput, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	output := ToProductOutput(p)
	return &output, nil
}
