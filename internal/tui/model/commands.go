package model

import (
	"context"
	"time"

	"crmctl/internal/api"
	"crmctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchCustomersCmd lists customers matching term. The result carries gen so
// stale responses can be discarded.
func FetchCustomersCmd(gw api.Gateway, gen uint64, term string) tea.Cmd {
	return func() tea.Msg {
		rows, err := gw.ListCustomers(context.Background(), term)
		return CustomersLoadedMsg{Generation: gen, Term: term, Rows: rows, Err: err}
	}
}

// FetchCustomerDetailCmd loads a customer and its addresses for the detail view.
func FetchCustomerDetailCmd(gw api.Gateway, gen uint64, id api.ID) tea.Cmd {
	return func() tea.Msg {
		c, err := gw.GetCustomer(context.Background(), id)
		return CustomerDetailLoadedMsg{Generation: gen, ID: id, Customer: c, Err: err}
	}
}

// FetchCustomerForEditCmd loads a customer to populate the customer form.
func FetchCustomerForEditCmd(gw api.Gateway, id api.ID) tea.Cmd {
	return func() tea.Msg {
		c, err := gw.GetCustomer(context.Background(), id)
		return CustomerLoadedForEditMsg{ID: id, Customer: c, Err: err}
	}
}

// FetchAddressForEditCmd loads an address to populate the address form.
func FetchAddressForEditCmd(gw api.Gateway, id api.ID) tea.Cmd {
	return func() tea.Msg {
		a, err := gw.GetAddress(context.Background(), id)
		return AddressLoadedForEditMsg{ID: id, Address: a, Err: err}
	}
}

// SubmitCustomerCmd creates a customer when id is empty and updates it otherwise.
func SubmitCustomerCmd(gw api.Gateway, id api.ID, in api.CustomerInput) tea.Cmd {
	return func() tea.Msg {
		msg := MutationResultMsg{Entity: EntityCustomer, ID: id}
		if id.IsZero() {
			msg.Op = OpCreate
			msg.Result, msg.Err = gw.CreateCustomer(context.Background(), in)
		} else {
			msg.Op = OpUpdate
			msg.Result, msg.Err = gw.UpdateCustomer(context.Background(), id, in)
		}
		return msg
	}
}

// DeleteCustomerCmd deletes a customer.
func DeleteCustomerCmd(gw api.Gateway, id api.ID) tea.Cmd {
	return func() tea.Msg {
		res, err := gw.DeleteCustomer(context.Background(), id)
		return MutationResultMsg{Op: OpDelete, Entity: EntityCustomer, ID: id, Result: res, Err: err}
	}
}

// SubmitAddressCmd creates an address when id is empty and updates it otherwise.
func SubmitAddressCmd(gw api.Gateway, id api.ID, in api.AddressInput) tea.Cmd {
	return func() tea.Msg {
		msg := MutationResultMsg{Entity: EntityAddress, ID: id, CustomerID: in.CustomerID}
		if id.IsZero() {
			msg.Op = OpCreate
			msg.Result, msg.Err = gw.CreateAddress(context.Background(), in)
		} else {
			msg.Op = OpUpdate
			msg.Result, msg.Err = gw.UpdateAddress(context.Background(), id, in)
		}
		return msg
	}
}

// DeleteAddressCmd deletes an address owned by customerID.
func DeleteAddressCmd(gw api.Gateway, id, customerID api.ID) tea.Cmd {
	return func() tea.Msg {
		res, err := gw.DeleteAddress(context.Background(), id)
		return MutationResultMsg{Op: OpDelete, Entity: EntityAddress, ID: id, CustomerID: customerID, Result: res, Err: err}
	}
}

// SearchDebounceCmd reports keystroke seq once the debounce window has passed.
func SearchDebounceCmd(d time.Duration, seq uint64, term string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq, Term: term}
	})
}

// ListenForLogEntriesCmd waits for the next log entry on ch.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
