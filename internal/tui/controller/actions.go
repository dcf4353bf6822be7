package controller

import (
	"fmt"

	"crmctl/internal/tui/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const actionSubsystem = "Actions"

// handleAction routes a row action to the controller owning its entity.
func handleAction(m *model.Model, msg model.ActionMsg) tea.Cmd {
	LogDebug(m, actionSubsystem, "%s %s %s", msg.Action, msg.Entity, msg.ID)
	if msg.ID.IsZero() {
		return nil
	}

	switch msg.Entity {
	case model.EntityCustomer:
		switch msg.Action {
		case model.ActionView:
			return openDetail(m, msg.ID)
		case model.ActionEdit:
			return loadCustomerForEdit(m, msg.ID)
		case model.ActionDelete:
			return requestCustomerDelete(m, msg.ID)
		}
	case model.EntityAddress:
		switch msg.Action {
		case model.ActionEdit:
			return loadAddressForEdit(m, msg.ID)
		case model.ActionDelete:
			return requestAddressDelete(m, msg.ID)
		}
	}
	LogWarn(actionSubsystem, "Unsupported action %s on %s", msg.Action, msg.Entity)
	return nil
}

// selectedCustomerAction binds action to the highlighted customer row.
func selectedCustomerAction(m *model.Model, action model.Action) tea.Cmd {
	row, ok := m.List.SelectedRow()
	if !ok {
		return nil
	}
	return handleAction(m, model.ActionMsg{Action: action, Entity: model.EntityCustomer, ID: row.ID})
}

// selectedAddressAction binds action to the highlighted address row.
func selectedAddressAction(m *model.Model, action model.Action) tea.Cmd {
	a, ok := m.Detail.SelectedAddress()
	if !ok {
		return nil
	}
	return handleAction(m, model.ActionMsg{Action: action, Entity: model.EntityAddress, ID: a.ID})
}

func openConfirm(m *model.Model, pending model.PendingDelete) {
	m.PendingDelete = pending
	m.CurrentAppMode = model.ModeConfirmOverlay
}

// confirmPendingDelete issues the delete the user just confirmed.
func confirmPendingDelete(m *model.Model) tea.Cmd {
	pending := m.PendingDelete
	m.PendingDelete = model.PendingDelete{}
	m.CurrentAppMode = model.ModeMain

	switch pending.Entity {
	case model.EntityCustomer:
		LogInfo(customerFormSubsystem, "Deleting customer %s", pending.ID)
		return model.DeleteCustomerCmd(m.Gateway, pending.ID)
	case model.EntityAddress:
		LogInfo(addressFormSubsystem, "Deleting address %s", pending.ID)
		return model.DeleteAddressCmd(m.Gateway, pending.ID, m.Detail.ActiveID())
	}
	return nil
}

func cancelPendingDelete(m *model.Model) tea.Cmd {
	LogDebug(m, actionSubsystem, "Delete of %s %s cancelled", m.PendingDelete.Entity, m.PendingDelete.ID)
	m.PendingDelete = model.PendingDelete{}
	m.CurrentAppMode = model.ModeMain
	return nil
}

// copySelection puts the highlighted row's text on the clipboard.
func copySelection(m *model.Model) tea.Cmd {
	var text string
	switch m.CurrentView {
	case model.ViewList:
		row, ok := m.List.SelectedRow()
		if !ok {
			return nil
		}
		text = fmt.Sprintf("%s - %s (ID: %s)", row.FullName(), row.PhoneNumber, row.ID)
	case model.ViewDetail:
		a, ok := m.Detail.SelectedAddress()
		if !ok {
			return nil
		}
		text = a.Line()
	}

	if err := clipboard.WriteAll(text); err != nil {
		LogError(actionSubsystem, err, "Failed to copy to clipboard")
		return m.SetStatusMessage("Copy failed", model.StatusBarError, m.StatusMessageDuration)
	}
	return m.SetStatusMessage("Copied to clipboard", model.StatusBarSuccess, m.StatusMessageDuration)
}
