package client

import (
	"context"
	"testing"

	"github.com/storely/backend/internal/domain/client"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientRepository is a mock implementation of client.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func validInput() AddClientInput {
	return AddClientInput{
		Name:     "Lucian",
		Email:    "lucian@xpto.com",
		Document: "1234-5678",
		Address: AddressDTO{
			Street:     "Rua 123",
			Number:     "99",
			Complement: "Casa Verde",
			City:       "Criciúma",
			State:      "SC",
			ZipCode:    "88888-888",
		},
	}
}

func TestClientService_Add(t *testing.T) {
	t.Run("adds client with explicit id", func(t *testing.T) {
		repo := new(MockClientRepository)
		repo.On("Add", mock.Anything, mock.AnythingOfType("*client.Client")).Return(nil)

		svc := NewClientService(repo)
		input := validInput()
		input.ID = "1"

		out, err := svc.Add(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "1", out.ID)
		assert.Equal(t, "Lucian", out.Name)
		assert.Equal(t, "Rua 123", out.Address.Street)
		repo.AssertExpectations(t)
	})

	t.Run("generates id when omitted", func(t *testing.T) {
		repo := new(MockClientRepository)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)

		svc := NewClientService(repo, WithIDGenerator(func() string { return "generated-id" }))

		out, err := svc.Add(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, "generated-id", out.ID)
	})

	t.Run("fails on incomplete address", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo)

		input := validInput()
		input.Address.City = ""

		_, err := svc.Add(context.Background(), input)
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
		assert.EqualError(t, err, "City is required")
		repo.AssertNotCalled(t, "Add")
	})
}

func TestClientService_Find(t *testing.T) {
	t.Run("returns client snapshot", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo)

		address := valueobject.MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")
		domainClient, err := client.NewClient(valueobject.NewID("1"), "Lucian", "lucian@xpto.com", "1234-5678", address)
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, "1").Return(domainClient, nil)

		out, err := svc.Find(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "1", out.ID)
		assert.Equal(t, "lucian@xpto.com", out.Email)
		assert.Equal(t, "SC", out.Address.State)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockClientRepository)
		repo.On("FindByID", mock.Anything, "unknown").
			Return(nil, shared.NewNotFoundError("Client not found"))

		svc := NewClientService(repo)
		_, err := svc.Find(context.Background(), "unknown")
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
		assert.EqualError(t, err, "Client not found")
	})
}
