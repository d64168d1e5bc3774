package client

import "context"

// Facade is the sole entry point into the client context.
// Callers from other contexts never touch the client store directly.
type Facade interface {
	// Add registers a new client; the ID is auto-generated when omitted
	Add(ctx context.Context, input AddClientInput) (*ClientOutput, error)

	// Find returns a client snapshot by ID.
	// Fails with a NOT_FOUND "Client not found" error when no record matches.
	Find(ctx context.Context, id string) (*ClientOutput, error)
}
