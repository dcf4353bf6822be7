package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is an opaque, server-assigned identifier. The backend may encode it as a
// JSON number or a JSON string; both decode to the same ID.
type ID string

// IsZero reports whether no identifier is bound.
func (id ID) IsZero() bool { return id == "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts numbers, strings and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a number or string: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integers as JSON numbers so they round-trip to
// backends that key on integer columns. Anything else, including "007" or
// "+5", stays a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// CustomerSummary is one row of the customer list.
type CustomerSummary struct {
	ID           ID     `json:"customer_id" yaml:"customer_id"`
	FirstName    string `json:"first_name" yaml:"first_name"`
	LastName     string `json:"last_name" yaml:"last_name"`
	PhoneNumber  string `json:"phone_number" yaml:"phone_number"`
	AddressCount int    `json:"address_count" yaml:"address_count"`
}

// FullName joins first and last name.
func (c CustomerSummary) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasMultipleAddresses drives the list badge.
func (c CustomerSummary) HasMultipleAddresses() bool {
	return c.AddressCount > 1
}

// Customer is the detail representation including its addresses.
type Customer struct {
	ID          ID        `json:"customer_id" yaml:"customer_id"`
	FirstName   string    `json:"first_name" yaml:"first_name"`
	LastName    string    `json:"last_name" yaml:"last_name"`
	PhoneNumber string    `json:"phone_number" yaml:"phone_number"`
	Addresses   []Address `json:"addresses" yaml:"addresses"`
}

// FullName joins first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Address belongs to exactly one customer.
type Address struct {
	ID            ID     `json:"address_id" yaml:"address_id"`
	CustomerID    ID     `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	StreetAddress string `json:"street_address" yaml:"street_address"`
	City          string `json:"city" yaml:"city"`
	State         string `json:"state" yaml:"state"`
	PinCode       string `json:"pin_code" yaml:"pin_code"`
}

// Line formats the address as a single display line.
func (a Address) Line() string {
	return fmt.Sprintf("%s, %s, %s - %s", a.StreetAddress, a.City, a.State, a.PinCode)
}

// AddressFields are the four user-editable address values.
type AddressFields struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PinCode       string `json:"pin_code"`
}

// CustomerInput is the body for POST and PUT /customers.
type CustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	AddressFields
	// AdditionalAddresses is only honoured on create.
	AdditionalAddresses []AddressFields `json:"additional_addresses,omitempty"`
}

// AddressInput is the body for POST and PUT /addresses.
type AddressInput struct {
	CustomerID ID `json:"customer_id"`
	AddressFields
}

// Result is the outcome of a mutating call. Message holds the backend's
// confirmation on success and its error text on failure.
type Result struct {
	OK      bool
	Status  int
	Message string
}

// Err returns nil for a successful result and a *ServerError otherwise.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &ServerError{Status: r.Status, Message: r.Message}
}

// messageBody is the shape of every mutation response and of error responses.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
