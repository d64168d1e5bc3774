package valueobject

import "github.com/google/uuid"

// IDGenerator produces a new unique identifier value.
// Services hold a generator so tests can substitute deterministic IDs.
type IDGenerator func() string

// DefaultIDGenerator generates a random 128-bit identifier
var DefaultIDGenerator IDGenerator = uuid.NewString

// ID is a value object wrapping a string identifier.
// It is immutable and compared by value.
type ID struct {
	value string
}

// NewID creates an ID with the given value
func NewID(value string) ID {
	return ID{value: value}
}

// GenerateID creates an ID using the default generator
func GenerateID() ID {
	return ID{value: DefaultIDGenerator()}
}

// NewIDOrGenerate returns an ID with the given value, generating a fresh
// identifier when value is empty
func NewIDOrGenerate(value string) ID {
	if value == "" {
		return GenerateID()
	}
	return ID{value: value}
}

// Value returns the wrapped identifier
func (id ID) Value() string {
	return id.value
}

// IsEmpty returns true if the ID has no value
func (id ID) IsEmpty() bool {
	return id.value == ""
}

// Equals returns true if both IDs wrap the same value
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// String returns the wrapped identifier
func (id ID) String() string {
	return id.value
}
