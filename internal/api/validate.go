package api

import (
	"fmt"
	"strings"
)

// Field labels used in validation messages.
const (
	FieldFirstName     = "First Name"
	FieldLastName      = "Last Name"
	FieldPhoneNumber   = "Phone Number"
	FieldStreetAddress = "Street Address"
	FieldCity          = "City"
	FieldState         = "State"
	FieldPinCode       = "Pin Code"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Trimmed returns a copy with surrounding whitespace removed.
func (a AddressFields) Trimmed() AddressFields {
	return AddressFields{
		StreetAddress: strings.TrimSpace(a.StreetAddress),
		City:          strings.TrimSpace(a.City),
		State:         strings.TrimSpace(a.State),
		PinCode:       strings.TrimSpace(a.PinCode),
	}
}

// missing returns the labels of blank fields, each prefixed with prefix.
func (a AddressFields) missing(prefix string) []string {
	var fields []string
	for _, f := range []struct {
		label, value string
	}{
		{FieldStreetAddress, a.StreetAddress},
		{FieldCity, a.City},
		{FieldState, a.State},
		{FieldPinCode, a.PinCode},
	} {
		if blank(f.value) {
			fields = append(fields, prefix+f.label)
		}
	}
	return fields
}

// Validate requires all four address fields.
func (a AddressFields) Validate() error {
	if fields := a.missing(""); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Trimmed returns a copy with every field trimmed, drafts included.
func (in CustomerInput) Trimmed() CustomerInput {
	out := CustomerInput{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		AddressFields: in.AddressFields.Trimmed(),
	}
	for _, extra := range in.AdditionalAddresses {
		out.AdditionalAddresses = append(out.AdditionalAddresses, extra.Trimmed())
	}
	return out
}

// Validate requires the three customer fields, the primary address block and
// every additional address draft to be non-blank.
func (in CustomerInput) Validate() error {
	var fields []string
	if blank(in.FirstName) {
		fields = append(fields, FieldFirstName)
	}
	if blank(in.LastName) {
		fields = append(fields, FieldLastName)
	}
	if blank(in.PhoneNumber) {
		fields = append(fields, FieldPhoneNumber)
	}
	fields = append(fields, in.AddressFields.missing("")...)
	for i, extra := range in.AdditionalAddresses {
		fields = append(fields, extra.missing(fmt.Sprintf("Additional Address %d ", i+1))...)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate requires an owning customer and all four address fields.
func (in AddressInput) Validate() error {
	var fields []string
	if in.CustomerID.IsZero() {
		fields = append(fields, "Customer ID")
	}
	fields = append(fields, in.AddressFields.missing("")...)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
