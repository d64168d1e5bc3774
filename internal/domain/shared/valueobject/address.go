package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storely/backend/internal/domain/shared"
)

// Address is a value object representing a postal address.
// It is immutable - all six fields are required and validated at construction.
type Address struct {
	street     string
	number     string
	complement string
	city       string
	state      string
	zipCode    string
}

// NewAddress creates a new Address. All fields are mandatory; validation
// fails on the first missing field, checked in declaration order.
func NewAddress(street, number, complement, city, state, zipCode string) (Address, error) {
	street = strings.TrimSpace(street)
	number = strings.TrimSpace(number)
	complement = strings.TrimSpace(complement)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	zipCode = strings.TrimSpace(zipCode)

	required := []struct {
		name  string
		value string
	}{
		{"Street", street},
		{"Number", number},
		{"Complement", complement},
		{"City", city},
		{"State", state},
		{"ZipCode", zipCode},
	}
	for _, field := range required {
		if field.value == "" {
			return Address{}, shared.NewValidationError(field.name + " is required")
		}
	}

	return Address{
		street:     street,
		number:     number,
		complement: complement,
		city:       city,
		state:      state,
		zipCode:    zipCode,
	}, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(street, number, complement, city, state, zipCode string) Address {
	addr, err := NewAddress(street, number, complement, city, state, zipCode)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyAddress returns a zero-value address
func EmptyAddress() Address {
	return Address{}
}

// Street returns the street
func (a Address) Street() string {
	return a.street
}

// Number returns the street number
func (a Address) Number() string {
	return a.number
}

// Complement returns the address complement
func (a Address) Complement() string {
	return a.complement
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// State returns the state
func (a Address) State() string {
	return a.state
}

// ZipCode returns the zip code
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEmpty returns true if all fields are blank
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Equals returns true if both addresses hold the same values
func (a Address) Equals(other Address) bool {
	return a == other
}

// String returns a single-line representation of the address
func (a Address) String() string {
	if a.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s, %s - %s, %s/%s %s", a.street, a.number, a.complement, a.city, a.state, a.zipCode)
}

// addressJSON is used for JSON marshaling/unmarshaling
type addressJSON struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:     a.street,
		Number:     a.number,
		Complement: a.complement,
		City:       a.city,
		State:      a.state,
		ZipCode:    a.zipCode,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Deserialization goes through
// NewAddress so validation rules apply consistently; an all-empty payload
// yields the empty address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if (v == addressJSON{}) {
		*a = EmptyAddress()
		return nil
	}

	addr, err := NewAddress(v.Street, v.Number, v.Complement, v.City, v.State, v.ZipCode)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Value implements driver.Valuer for database storage as JSON
func (a Address) Value() (driver.Value, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *Address) Scan(value any) error {
	if value == nil {
		*a = EmptyAddress()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*a = EmptyAddress()
		return nil
	}

	return json.Unmarshal(data, a)
}
