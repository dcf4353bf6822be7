package controller

import (
	"fmt"

	"crmctl/internal/api"
	"crmctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const detailSubsystem = "CustomerDetail"

// openDetail fetches customer id for the detail view. The view only switches
// once the fetch succeeds.
func openDetail(m *model.Model, id api.ID) tea.Cmd {
	if id.IsZero() {
		LogWarn(detailSubsystem, "Refusing to open detail view without a customer ID")
		return nil
	}
	gen := m.Detail.Begin()
	LogDebug(m, detailSubsystem, "Fetching customer %s (generation %d)", id, gen)
	return model.FetchCustomerDetailCmd(m.Gateway, gen, id)
}

func handleCustomerDetailLoaded(m *model.Model, msg model.CustomerDetailLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		if !m.Detail.Fail(msg.Generation) {
			return nil
		}
		LogError(detailSubsystem, msg.Err, "Error fetching customer %s", msg.ID)
		return m.SetStatusMessage(fmt.Sprintf("Failed to load customer %s: %v", msg.ID, msg.Err), model.StatusBarError, m.StatusMessageDuration)
	}
	if msg.Customer == nil {
		m.Detail.Fail(msg.Generation)
		return nil
	}

	previous := m.Detail.ActiveID()
	if !m.Detail.Apply(msg.Generation, msg.Customer) {
		LogDebug(m, detailSubsystem, "Dropping stale detail for customer %s", msg.ID)
		return nil
	}
	if previous != msg.Customer.ID {
		m.AddressForm.Reset()
	}
	m.AddressForm.BindCustomer(msg.Customer.ID)

	if m.CurrentView == model.ViewDetail {
		return nil
	}
	cmd, err := showDetail(m)
	if err != nil {
		LogError(detailSubsystem, err, "Cannot show customer %s", msg.ID)
		return nil
	}
	return cmd
}

// closeDetail returns to the list with the search reset to unfiltered.
func closeDetail(m *model.Model) tea.Cmd {
	cmd := showList(m)
	m.Detail.Clear()
	m.AddressForm.Reset()
	return tea.Batch(cmd, clearSearch(m))
}
