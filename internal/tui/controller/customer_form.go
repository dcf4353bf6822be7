package controller

import (
	"fmt"

	"crmctl/internal/api"
	"crmctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const customerFormSubsystem = "CustomerForm"

// loadCustomerForCreate clears the customer form and focuses its first field.
func loadCustomerForCreate(m *model.Model) tea.Cmd {
	m.CustomerForm.Reset()
	m.CustomerForm.Cursor = 0
	return setFocus(m, model.FocusCustomerForm)
}

// loadCustomerForEdit fetches customer id to populate the form.
func loadCustomerForEdit(m *model.Model, id api.ID) tea.Cmd {
	m.CustomerForm.Loading = true
	return model.FetchCustomerForEditCmd(m.Gateway, id)
}

func handleCustomerLoadedForEdit(m *model.Model, msg model.CustomerLoadedForEditMsg) tea.Cmd {
	m.CustomerForm.Loading = false
	if msg.Err != nil {
		LogError(customerFormSubsystem, msg.Err, "Error loading customer %s for edit", msg.ID)
		m.ShowNotice("Error", fmt.Sprintf("Could not load customer %s: %v", msg.ID, msg.Err), true)
		return nil
	}
	if msg.Customer == nil {
		return nil
	}

	m.CustomerForm.LoadCustomer(msg.Customer)
	m.CustomerForm.Cursor = 0
	LogDebug(m, customerFormSubsystem, "Editing customer %s", msg.Customer.ID)
	if m.CurrentView != model.ViewList {
		return nil
	}
	return setFocus(m, model.FocusCustomerForm)
}

// submitCustomerForm validates the form and issues create or update. Invalid
// input never reaches the gateway.
func submitCustomerForm(m *model.Model) tea.Cmd {
	f := &m.CustomerForm
	if f.Loading {
		return nil
	}
	in := f.Input().Trimmed()
	if err := in.Validate(); err != nil {
		f.Validation = err.Error()
		LogDebug(m, customerFormSubsystem, "Validation failed: %v", err)
		return nil
	}

	f.Validation = ""
	f.Loading = true
	if f.Mode() == model.FormEdit {
		LogInfo(customerFormSubsystem, "Updating customer %s", f.BoundID)
	} else {
		LogInfo(customerFormSubsystem, "Creating customer %s %s with %d additional address(es)", in.FirstName, in.LastName, len(in.AdditionalAddresses))
	}
	return model.SubmitCustomerCmd(m.Gateway, f.BoundID, in)
}

// requestCustomerDelete asks for confirmation, or deletes right away when
// confirmations are disabled.
func requestCustomerDelete(m *model.Model, id api.ID) tea.Cmd {
	if id.IsZero() {
		return nil
	}
	if !m.ConfirmDeletes {
		LogInfo(customerFormSubsystem, "Deleting customer %s", id)
		return model.DeleteCustomerCmd(m.Gateway, id)
	}
	label := fmt.Sprintf("customer %s", id)
	if row, ok := m.List.SelectedRow(); ok && row.ID == id {
		label = fmt.Sprintf("%s (ID: %s)", row.FullName(), id)
	}
	openConfirm(m, model.PendingDelete{Entity: model.EntityCustomer, ID: id, Label: label})
	return nil
}

// handleCustomerMutationResult reports the outcome, returns the form to create
// mode and refreshes the list. All three happen whatever the outcome.
func handleCustomerMutationResult(m *model.Model, msg model.MutationResultMsg) tea.Cmd {
	if msg.Op != model.OpDelete || m.CustomerForm.BoundID == msg.ID {
		m.CustomerForm.Reset()
	}
	reportMutation(m, customerFormSubsystem, msg)
	return refreshList(m, m.List.Term)
}

// reportMutation logs a mutation outcome and shows it in the notice overlay.
func reportMutation(m *model.Model, subsystem string, msg model.MutationResultMsg) {
	switch {
	case msg.Err != nil:
		LogError(subsystem, msg.Err, "Failed to %s %s %s", msg.Op, msg.Entity, msg.ID)
		m.ShowNotice("Error", msg.Err.Error(), true)
	case !msg.Result.OK:
		LogWarn(subsystem, "Backend rejected %s of %s %s: %s", msg.Op, msg.Entity, msg.ID, msg.Result.Message)
		m.ShowNotice("Error", "Error: "+msg.Result.Message, true)
	default:
		LogInfo(subsystem, "%s %s %s: %s", msg.Op, msg.Entity, msg.ID, msg.Result.Message)
		m.ShowNotice("Success", msg.Result.Message, false)
	}
}
