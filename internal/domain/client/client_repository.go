package client

import "context"

// ClientRepository defines the persistence contract for the client context
type ClientRepository interface {
	// Add persists a new client
	Add(ctx context.Context, client *Client) error

	// FindByID finds a client by its ID.
	// Returns a NOT_FOUND domain error when no record matches.
	FindByID(ctx context.Context, id string) (*Client, error)
}
