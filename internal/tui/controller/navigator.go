package controller

import (
	"errors"

	"crmctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoActiveCustomer = errors.New("detail view requires an active customer")

// showList makes the list view visible and focuses the customer rows.
func showList(m *model.Model) tea.Cmd {
	m.CurrentView = model.ViewList
	return setFocus(m, model.FocusList)
}

// showDetail makes the detail view visible. It is rejected while no customer
// is loaded, since the view has nothing to render without one.
func showDetail(m *model.Model) (tea.Cmd, error) {
	if m.Detail.ActiveID().IsZero() {
		return nil, errNoActiveCustomer
	}
	m.CurrentView = model.ViewDetail
	return setFocus(m, model.FocusAddressList), nil
}

// focusOrder lists the panes Tab cycles through in the visible view.
func focusOrder(v model.View) []model.Focus {
	if v == model.ViewDetail {
		return []model.Focus{model.FocusAddressList, model.FocusAddressForm}
	}
	return []model.Focus{model.FocusList, model.FocusSearch, model.FocusCustomerForm}
}

// cycleFocus moves focus by delta within the visible view's panes, wrapping.
func cycleFocus(m *model.Model, delta int) tea.Cmd {
	order := focusOrder(m.CurrentView)
	idx := 0
	for i, f := range order {
		if f == m.Focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return setFocus(m, order[idx])
}

// setFocus moves keyboard focus to f, blurring every text input first.
func setFocus(m *model.Model, f model.Focus) tea.Cmd {
	m.SearchInput.Blur()
	m.CustomerForm.Blur()
	m.AddressForm.Blur()
	m.Focus = f

	switch f {
	case model.FocusSearch:
		return m.SearchInput.Focus()
	case model.FocusCustomerForm:
		return m.CustomerForm.Focus()
	case model.FocusAddressForm:
		return m.AddressForm.Focus()
	}
	return nil
}

// isTextFocus reports whether key presses should be typed into an input.
func isTextFocus(f model.Focus) bool {
	return f == model.FocusSearch || f == model.FocusCustomerForm || f == model.FocusAddressForm
}
