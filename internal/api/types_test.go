package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSON(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{in: `12`, want: "12"},
		{in: `"12"`, want: "12"},
		{in: `"a-b"`, want: "a-b"},
		{in: `null`, want: ""},
	}
	for _, tt := range tests {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id), tt.in)
		assert.Equal(t, tt.want, id, tt.in)
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))

	out, err := json.Marshal(AddressInput{CustomerID: "7"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"customer_id":7`)

	out, err = json.Marshal(AddressInput{CustomerID: "c-7"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"customer_id":"c-7"`)
}

func TestID_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		in      string
		wantOut string
	}{
		{in: `7`, wantOut: `7`},
		{in: `"7"`, wantOut: `7`},
		{in: `-3`, wantOut: `-3`},
		{in: `"007"`, wantOut: `"007"`},
		{in: `"+5"`, wantOut: `"+5"`},
		{in: `"-0"`, wantOut: `"-0"`},
		{in: `"c-7"`, wantOut: `"c-7"`},
		{in: `"99999999999999999999"`, wantOut: `"99999999999999999999"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var in struct {
				ID ID `json:"customer_id"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"customer_id":`+tt.in+`}`), &in))

			out, err := json.Marshal(AddressInput{CustomerID: in.ID})
			require.NoError(t, err)
			assert.Contains(t, string(out), `"customer_id":`+tt.wantOut)

			var back AddressInput
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, in.ID, back.CustomerID)
		})
	}
}

func TestCustomerInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*CustomerInput)
		wantFields []string
	}{
		{name: "complete", mutate: func(*CustomerInput) {}},
		{
			name:       "whitespace counts as blank",
			mutate:     func(in *CustomerInput) { in.FirstName = "   " },
			wantFields: []string{FieldFirstName},
		},
		{
			name: "every missing field is reported in order",
			mutate: func(in *CustomerInput) {
				in.PhoneNumber = ""
				in.City = ""
				in.PinCode = ""
			},
			wantFields: []string{FieldPhoneNumber, FieldCity, FieldPinCode},
		},
		{
			name: "additional drafts are numbered",
			mutate: func(in *CustomerInput) {
				in.AdditionalAddresses = []AddressFields{
					{StreetAddress: "a", City: "b", State: "c", PinCode: "d"},
					{StreetAddress: "a", City: "", State: "c", PinCode: "d"},
				}
			},
			wantFields: []string{"Additional Address 2 City"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := janeDoe()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantFields, ve.Fields)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "City is required", (&ValidationError{Fields: []string{"City"}}).Error())
	assert.Equal(t, "required fields missing: City, State",
		(&ValidationError{Fields: []string{"City", "State"}}).Error())
}

func TestAddressInput_Validate(t *testing.T) {
	err := AddressInput{AddressFields: AddressFields{StreetAddress: "s", City: "c", State: "st", PinCode: "p"}}.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Customer ID"}, ve.Fields)

	assert.NoError(t, AddressInput{
		CustomerID:    "1",
		AddressFields: AddressFields{StreetAddress: "s", City: "c", State: "st", PinCode: "p"},
	}.Validate())
}

func TestCustomerInput_Trimmed(t *testing.T) {
	in := CustomerInput{
		FirstName:           "  Jane ",
		AddressFields:       AddressFields{City: " X "},
		AdditionalAddresses: []AddressFields{{PinCode: " 9"}},
	}
	out := in.Trimmed()
	assert.Equal(t, "Jane", out.FirstName)
	assert.Equal(t, "X", out.City)
	assert.Equal(t, "9", out.AdditionalAddresses[0].PinCode)
	assert.Equal(t, "  Jane ", in.FirstName, "original is untouched")
}

func TestServerError(t *testing.T) {
	err := Result{OK: false, Status: 404, Message: "Customer not found"}.Err()
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "server returned 404: Customer not found", err.Error())
	assert.Equal(t, "server returned 500: Internal Server Error", (&ServerError{Status: 500}).Error())
	assert.NoError(t, Result{OK: true}.Err())
}
