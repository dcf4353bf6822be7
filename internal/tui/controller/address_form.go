package controller

import (
	"fmt"

	"crmctl/internal/api"
	"crmctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const addressFormSubsystem = "AddressForm"

// loadAddressForCreate clears the address form for a new address of the
// active customer.
func loadAddressForCreate(m *model.Model) tea.Cmd {
	m.AddressForm.Reset()
	m.AddressForm.BindCustomer(m.Detail.ActiveID())
	m.AddressForm.Cursor = 0
	return setFocus(m, model.FocusAddressForm)
}

func loadAddressForEdit(m *model.Model, id api.ID) tea.Cmd {
	m.AddressForm.Loading = true
	return model.FetchAddressForEditCmd(m.Gateway, id)
}

func handleAddressLoadedForEdit(m *model.Model, msg model.AddressLoadedForEditMsg) tea.Cmd {
	m.AddressForm.Loading = false
	if msg.Err != nil {
		LogError(addressFormSubsystem, msg.Err, "Error loading address %s for edit", msg.ID)
		m.ShowNotice("Error", fmt.Sprintf("Could not load address %s: %v", msg.ID, msg.Err), true)
		return nil
	}
	if msg.Address == nil || m.CurrentView != model.ViewDetail {
		return nil
	}

	m.AddressForm.LoadAddress(msg.Address)
	m.AddressForm.Cursor = 0
	return setFocus(m, model.FocusAddressForm)
}

// submitAddressForm validates and issues create or update for the bound customer.
func submitAddressForm(m *model.Model) tea.Cmd {
	f := &m.AddressForm
	if f.Loading {
		return nil
	}
	if f.CustomerID.IsZero() {
		f.BindCustomer(m.Detail.ActiveID())
	}
	in := f.Input()
	in.AddressFields = in.AddressFields.Trimmed()
	if err := in.Validate(); err != nil {
		f.Validation = err.Error()
		LogDebug(m, addressFormSubsystem, "Validation failed: %v", err)
		return nil
	}

	f.Validation = ""
	f.Loading = true
	LogInfo(addressFormSubsystem, "Submitting %s of address %s for customer %s", f.Mode(), f.BoundID, in.CustomerID)
	return model.SubmitAddressCmd(m.Gateway, f.BoundID, in)
}

func requestAddressDelete(m *model.Model, id api.ID) tea.Cmd {
	if id.IsZero() {
		return nil
	}
	if !m.ConfirmDeletes {
		LogInfo(addressFormSubsystem, "Deleting address %s", id)
		return model.DeleteAddressCmd(m.Gateway, id, m.Detail.ActiveID())
	}
	label := fmt.Sprintf("address %s", id)
	if a, ok := m.Detail.SelectedAddress(); ok && a.ID == id {
		label = a.Line()
	}
	openConfirm(m, model.PendingDelete{Entity: model.EntityAddress, ID: id, Label: label})
	return nil
}

// handleAddressMutationResult reports the outcome and re-opens the detail view
// for the owning customer, whatever the outcome.
func handleAddressMutationResult(m *model.Model, msg model.MutationResultMsg) tea.Cmd {
	if msg.Op != model.OpDelete || m.AddressForm.BoundID == msg.ID {
		m.AddressForm.Reset()
	}
	reportMutation(m, addressFormSubsystem, msg)

	customerID := msg.CustomerID
	if customerID.IsZero() {
		customerID = m.Detail.ActiveID()
	}
	return openDetail(m, customerID)
}
