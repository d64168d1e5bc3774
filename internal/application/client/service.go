package client

import (
	"context"

	"github.com/storely/backend/internal/domain/client"
	"github.com/storely/backend/internal/domain/shared/valueobject"
)

// ClientService implements the client context facade
type ClientService struct {
	repo  client.ClientRepository
	idGen valueobject.IDGenerator
}

// ClientServiceOption configures a ClientService
type ClientServiceOption func(*ClientService)

// WithIDGenerator overrides the identifier generator
func WithIDGenerator(gen valueobject.IDGenerator) ClientServiceOption {
	return func(s *ClientService) {
		s.idGen = gen
	}
}

// NewClientService creates a new ClientService
func NewClientService(repo client.ClientRepository, opts ...ClientServiceOption) *ClientService {
	s := &ClientService{
		repo:  repo,
		idGen: valueobject.DefaultIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a new client
func (s *ClientService) Add(ctx context.Context, input AddClientInput) (*ClientOutput, error) {
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

	id := input.ID
	if id == "" {
		id = s.idGen()
	}

	c, err := client.NewClient(valueobject.NewID(id), input.Name, input.Email, input.Document, address)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, c); err != nil {
		return nil, err
	}

	output := ToClientOutput(c)
	return &output, nil
}

// Find returns a client snapshot by ID
func (s *ClientService) Find(ctx context.Context, id string) (*ClientOutput, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	output := ToClientOutput(c)
	return &output, nil
}
