package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name       string
		street     string
		number     string
		complement string
		city       string
		state      string
		zipCode    string
		wantErr    bool
		errMessage string
	}{
		{
			name:       "valid address",
			street:     "Rua 123",
			number:     "99",
			complement: "Casa Verde",
			city:       "Criciúma",
			state:      "SC",
			zipCode:    "88888-888",
			wantErr:    false,
		},
		{
			name:       "missing street",
			number:     "99",
			complement: "Casa Verde",
			city:       "Criciúma",
			state:      "SC",
			zipCode:    "88888-888",
			wantErr:    true,
			errMessage: "Street is required",
		},
		{
			name:       "missing number",
			street:     "Rua 123",
			complement: "Casa Verde",
			city:       "Criciúma",
			state:      "SC",
			zipCode:    "88888-888",
			wantErr:    true,
			errMessage: "Number is required",
		},
		{
			name:    "missing complement",
			street:  "Rua 123",
			number:  "99",
			city:    "Criciúma",
			state:   "SC",
			zipCode: "88888-888",
			wantErr: true,
			errMessage: "Complement is required",
		},
		{
			name:       "missing city",
			street:     "Rua 123",
			number:     "99",
			complement: "Casa Verde",
			state:      "SC",
			zipCode:    "88888-888",
			wantErr:    true,
			errMessage: "City is required",
		},
		{
			name:       "missing state",
			street:     "Rua 123",
			number:     "99",
			complement: "Casa Verde",
			city:       "Criciúma",
			zipCode:    "88888-888",
			wantErr:    true,
			errMessage: "State is required",
		},
		{
			name:       "missing zip code",
			street:     "Rua 123",
			number:     "99",
			complement: "Casa Verde",
			city:       "Criciúma",
			state:      "SC",
			wantErr:    true,
			errMessage: "ZipCode is required",
		},
		{
			name:       "whitespace-only field is missing",
			street:     "   ",
			number:     "99",
			complement: "Casa Verde",
			city:       "Criciúma",
			state:      "SC",
			zipCode:    "88888-888",
			wantErr:    true,
			errMessage: "Street is required",
		},
		{
			name:       "first missing field wins",
			street:     "",
			number:     "",
			complement: "",
			city:       "",
			state:      "",
			zipCode:    "",
			wantErr:    true,
			errMessage: "Street is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := NewAddress(tt.street, tt.number, tt.complement, tt.city, tt.state, tt.zipCode)
			if tt.wantErr {
				require.Error(t, err)
				assert.EqualError(t, err, tt.errMessage)
				assert.True(t, addr.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.street, addr.Street())
			assert.Equal(t, tt.number, addr.Number())
			assert.Equal(t, tt.complement, addr.Complement())
			assert.Equal(t, tt.city, addr.City())
			assert.Equal(t, tt.state, addr.State())
			assert.Equal(t, tt.zipCode, addr.ZipCode())
		})
	}
}

func TestAddress_Equals(t *testing.T) {
	a := MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")
	b := MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")
	c := MustNewAddress("Rua 456", "99", "Casa Verde", "Criciúma", "SC", "88888-888")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestAddress_JSONRoundTrip(t *testing.T) {
	addr := MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")

	data, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"street": "Rua 123",
		"number": "99",
		"complement": "Casa Verde",
		"city": "Criciúma",
		"state": "SC",
		"zipCode": "88888-888"
	}`, string(data))

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, addr.Equals(decoded))
}

func TestAddress_UnmarshalJSONValidates(t *testing.T) {
	var addr Address
	err := json.Unmarshal([]byte(`{"street":"Rua 123","number":"99"}`), &addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Complement is required")
}

func TestAddress_ScanValue(t *testing.T) {
	addr := MustNewAddress("Rua 123", "99", "Casa Verde", "Criciúma", "SC", "88888-888")

	v, err := addr.Value()
	require.NoError(t, err)

	var scanned Address
	require.NoError(t, scanned.Scan(v))
	assert.True(t, addr.Equals(scanned))

	var empty Address
	require.NoError(t, empty.Scan(nil))
	assert.True(t, empty.IsEmpty())
}
