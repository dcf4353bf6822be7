package model

import (
	"crmctl/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormMode is create (no bound ID) or edit (bound ID).
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

func (m FormMode) String() string {
	if m == FormEdit {
		return "edit"
	}
	return "create"
}

// Customer form field indices.
const (
	FieldFirstName = iota
	FieldLastName
	FieldPhone
	FieldStreet
	FieldCity
	FieldState
	FieldPin
	customerFieldCount
)

// Address field indices, used by the address form and by drafts.
const (
	AddrStreet = iota
	AddrCity
	AddrState
	AddrPin
	addressFieldCount
)

// CustomerFieldLabels is indexed by the Field* constants.
var CustomerFieldLabels = [customerFieldCount]string{
	api.FieldFirstName, api.FieldLastName, api.FieldPhoneNumber,
	api.FieldStreetAddress, api.FieldCity, api.FieldState, api.FieldPinCode,
}

// AddressFieldLabels is indexed by the Addr* constants.
var AddressFieldLabels = [addressFieldCount]string{
	api.FieldStreetAddress, api.FieldCity, api.FieldState, api.FieldPinCode,
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 32
	return ti
}

func newAddressInputs() [addressFieldCount]textinput.Model {
	var inputs [addressFieldCount]textinput.Model
	for i, label := range AddressFieldLabels {
		inputs[i] = newField(label)
	}
	return inputs
}

func addressFieldsOf(inputs [addressFieldCount]textinput.Model) api.AddressFields {
	return api.AddressFields{
		StreetAddress: inputs[AddrStreet].Value(),
		City:          inputs[AddrCity].Value(),
		State:         inputs[AddrState].Value(),
		PinCode:       inputs[AddrPin].Value(),
	}
}

// AddressDraft is one additional address block appended to a new customer.
type AddressDraft struct {
	Inputs [addressFieldCount]textinput.Model
}

// Fields returns the draft's values.
func (d AddressDraft) Fields() api.AddressFields { return addressFieldsOf(d.Inputs) }

// CustomerForm is the state of the customer create/edit form.
type CustomerForm struct {
	Inputs     [customerFieldCount]textinput.Model
	Drafts     []AddressDraft
	BoundID    api.ID
	Cursor     int
	Validation string
	Loading    bool
}

// NewCustomerForm returns an empty form in create mode.
func NewCustomerForm() CustomerForm {
	var f CustomerForm
	for i, label := range CustomerFieldLabels {
		f.Inputs[i] = newField(label)
	}
	return f
}

// Mode reports create or edit from the bound identifier.
func (f *CustomerForm) Mode() FormMode {
	if f.BoundID.IsZero() {
		return FormCreate
	}
	return FormEdit
}

// SubmitLabel is the label of the submit action for the current mode.
func (f *CustomerForm) SubmitLabel() string {
	if f.Mode() == FormEdit {
		return "Update Customer"
	}
	return "Add Customer"
}

// Reset clears every field and draft and returns the form to create mode.
func (f *CustomerForm) Reset() {
	focused := f.Focused()
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	f.Drafts = nil
	f.BoundID = ""
	f.Validation = ""
	f.Loading = false
	if f.Cursor >= f.FieldCount() {
		f.Cursor = 0
	}
	f.refocus(focused)
}

// LoadCustomer binds c and fills its own fields. Address fields are cleared
// because addresses are edited from the detail view.
func (f *CustomerForm) LoadCustomer(c *api.Customer) {
	f.Reset()
	f.BoundID = c.ID
	f.Inputs[FieldFirstName].SetValue(c.FirstName)
	f.Inputs[FieldLastName].SetValue(c.LastName)
	f.Inputs[FieldPhone].SetValue(c.PhoneNumber)
}

// SetField sets field i, counting draft fields after the seven primary ones.
func (f *CustomerForm) SetField(i int, value string) {
	if in := f.field(i); in != nil {
		in.SetValue(value)
	}
}

// Input assembles the request body from the fields.
func (f *CustomerForm) Input() api.CustomerInput {
	in := api.CustomerInput{
		FirstName:   f.Inputs[FieldFirstName].Value(),
		LastName:    f.Inputs[FieldLastName].Value(),
		PhoneNumber: f.Inputs[FieldPhone].Value(),
		AddressFields: api.AddressFields{
			StreetAddress: f.Inputs[FieldStreet].Value(),
			City:          f.Inputs[FieldCity].Value(),
			State:         f.Inputs[FieldState].Value(),
			PinCode:       f.Inputs[FieldPin].Value(),
		},
	}
	for _, d := range f.Drafts {
		in.AdditionalAddresses = append(in.AdditionalAddresses, d.Fields())
	}
	return in
}

// AppendDraft adds an empty additional address block. Only allowed in create mode.
func (f *CustomerForm) AppendDraft() bool {
	if f.Mode() == FormEdit {
		return false
	}
	f.Drafts = append(f.Drafts, AddressDraft{Inputs: newAddressInputs()})
	return true
}

// DropDraft removes the last additional address block.
func (f *CustomerForm) DropDraft() bool {
	if len(f.Drafts) == 0 {
		return false
	}
	focused := f.Focused()
	f.Drafts = f.Drafts[:len(f.Drafts)-1]
	if f.Cursor >= f.FieldCount() {
		f.Cursor = f.FieldCount() - 1
	}
	f.refocus(focused)
	return true
}

// FieldCount is the number of editable inputs including drafts.
func (f *CustomerForm) FieldCount() int {
	return customerFieldCount + addressFieldCount*len(f.Drafts)
}

func (f *CustomerForm) field(i int) *textinput.Model {
	if i < 0 || i >= f.FieldCount() {
		return nil
	}
	if i < customerFieldCount {
		return &f.Inputs[i]
	}
	i -= customerFieldCount
	return &f.Drafts[i/addressFieldCount].Inputs[i%addressFieldCount]
}

// Focus gives the cursor field keyboard focus.
func (f *CustomerForm) Focus() tea.Cmd {
	return f.refocus(true)
}

// Blur removes focus from every field.
func (f *CustomerForm) Blur() {
	for i := 0; i < f.FieldCount(); i++ {
		f.field(i).Blur()
	}
}

// Focused reports whether any field has focus.
func (f *CustomerForm) Focused() bool {
	for i := 0; i < f.FieldCount(); i++ {
		if f.field(i).Focused() {
			return true
		}
	}
	return false
}

func (f *CustomerForm) refocus(wasFocused bool) tea.Cmd {
	f.Blur()
	if !wasFocused {
		return nil
	}
	return f.field(f.Cursor).Focus()
}

// Next moves the cursor forward, wrapping.
func (f *CustomerForm) Next() tea.Cmd {
	f.Cursor = (f.Cursor + 1) % f.FieldCount()
	f.Blur()
	return f.field(f.Cursor).Focus()
}

// Prev moves the cursor backward, wrapping.
func (f *CustomerForm) Prev() tea.Cmd {
	n := f.FieldCount()
	f.Cursor = (f.Cursor - 1 + n) % n
	f.Blur()
	return f.field(f.Cursor).Focus()
}

// Update forwards msg to the focused field.
func (f *CustomerForm) Update(msg tea.Msg) tea.Cmd {
	in := f.field(f.Cursor)
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

// AddressForm is the state of the address create/edit form in the detail view.
type AddressForm struct {
	Inputs     [addressFieldCount]textinput.Model
	BoundID    api.ID
	CustomerID api.ID
	Cursor     int
	Validation string
	Loading    bool
}

// NewAddressForm returns an empty address form in create mode.
func NewAddressForm() AddressForm {
	return AddressForm{Inputs: newAddressInputs()}
}

func (f *AddressForm) Mode() FormMode {
	if f.BoundID.IsZero() {
		return FormCreate
	}
	return FormEdit
}

func (f *AddressForm) SubmitLabel() string {
	if f.Mode() == FormEdit {
		return "Update Address"
	}
	return "Add Address"
}

// Reset clears the fields and bound address. The customer reference is kept.
func (f *AddressForm) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	f.BoundID = ""
	f.Validation = ""
	f.Loading = false
}

// BindCustomer points new addresses at customerID.
func (f *AddressForm) BindCustomer(customerID api.ID) {
	f.CustomerID = customerID
}

// LoadAddress binds a and fills the fields from it.
func (f *AddressForm) LoadAddress(a *api.Address) {
	f.Reset()
	f.BoundID = a.ID
	f.Inputs[AddrStreet].SetValue(a.StreetAddress)
	f.Inputs[AddrCity].SetValue(a.City)
	f.Inputs[AddrState].SetValue(a.State)
	f.Inputs[AddrPin].SetValue(a.PinCode)
}

func (f *AddressForm) SetField(i int, value string) {
	if i >= 0 && i < addressFieldCount {
		f.Inputs[i].SetValue(value)
	}
}

// Input assembles the request body for the bound customer.
func (f *AddressForm) Input() api.AddressInput {
	return api.AddressInput{CustomerID: f.CustomerID, AddressFields: addressFieldsOf(f.Inputs)}
}

func (f *AddressForm) Focus() tea.Cmd {
	f.Blur()
	return f.Inputs[f.Cursor].Focus()
}

func (f *AddressForm) Blur() {
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
}

func (f *AddressForm) Next() tea.Cmd {
	f.Cursor = (f.Cursor + 1) % addressFieldCount
	return f.Focus()
}

func (f *AddressForm) Prev() tea.Cmd {
	f.Cursor = (f.Cursor - 1 + addressFieldCount) % addressFieldCount
	return f.Focus()
}

func (f *AddressForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Inputs[f.Cursor], cmd = f.Inputs[f.Cursor].Update(msg)
	return cmd
}
