package controller

import (
	"strings"

	"crmctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// handleKeyMsgGlobal processes a key press. Overlays take precedence, then
// text inputs with focus, then the bindings of the visible view.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return m, quit(m)
	}

	// --- Overlay-specific key handling --------------------------------------
	switch m.CurrentAppMode {
	case model.ModeConfirmOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Confirm):
			return m, confirmPendingDelete(m)
		case key.Matches(keyMsg, m.Keys.Deny):
			return m, cancelPendingDelete(m)
		}
		return m, nil

	case model.ModeNoticeOverlay:
		if key.Matches(keyMsg, m.Keys.Enter, m.Keys.Esc) || keyMsg.Type == tea.KeySpace {
			m.DismissNotice()
		}
		return m, nil

	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(keySubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, m.StatusMessageDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, m.StatusMessageDuration)
		}
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd

	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help, m.Keys.Esc) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	if isTextFocus(m.Focus) {
		return m, handleTextKey(m, keyMsg)
	}

	// --- Global bindings ---------------------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return m, quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, cycleFocus(m, 1)
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, cycleFocus(m, -1)
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copySelection(m)
	}

	if m.CurrentView == model.ViewDetail {
		return m, handleDetailKey(m, keyMsg)
	}
	return m, handleListKey(m, keyMsg)
}

func handleListKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.List.Move(-1)
	case key.Matches(keyMsg, m.Keys.Down):
		m.List.Move(1)
	case key.Matches(keyMsg, m.Keys.View, m.Keys.Enter):
		return selectedCustomerAction(m, model.ActionView)
	case key.Matches(keyMsg, m.Keys.Edit):
		return selectedCustomerAction(m, model.ActionEdit)
	case key.Matches(keyMsg, m.Keys.Delete):
		return selectedCustomerAction(m, model.ActionDelete)
	case key.Matches(keyMsg, m.Keys.New):
		return loadCustomerForCreate(m)
	case key.Matches(keyMsg, m.Keys.Search):
		return setFocus(m, model.FocusSearch)
	case key.Matches(keyMsg, m.Keys.ClearInput):
		return clearSearch(m)
	}
	return nil
}

func handleDetailKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.Detail.Move(-1)
	case key.Matches(keyMsg, m.Keys.Down):
		m.Detail.Move(1)
	case key.Matches(keyMsg, m.Keys.Edit, m.Keys.Enter):
		return selectedAddressAction(m, model.ActionEdit)
	case key.Matches(keyMsg, m.Keys.Delete):
		return selectedAddressAction(m, model.ActionDelete)
	case key.Matches(keyMsg, m.Keys.AddAddress):
		return loadAddressForCreate(m)
	case key.Matches(keyMsg, m.Keys.Back, m.Keys.Esc):
		return closeDetail(m)
	}
	return nil
}

// handleTextKey routes a key press to the focused text input. Only control
// keys act as shortcuts here; printable keys are typed.
func handleTextKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	switch m.Focus {
	case model.FocusSearch:
		switch {
		case key.Matches(keyMsg, m.Keys.Esc):
			if m.SearchInput.Value() == "" {
				return setFocus(m, model.FocusList)
			}
			return tea.Batch(setFocus(m, model.FocusList), clearSearch(m))
		case key.Matches(keyMsg, m.Keys.ClearInput):
			return clearSearch(m)
		case key.Matches(keyMsg, m.Keys.Enter), keyMsg.Type == tea.KeyDown:
			return setFocus(m, model.FocusList)
		case key.Matches(keyMsg, m.Keys.Tab):
			return cycleFocus(m, 1)
		case key.Matches(keyMsg, m.Keys.ShiftTab):
			return cycleFocus(m, -1)
		}
		return handleSearchKey(m, keyMsg)

	case model.FocusCustomerForm:
		f := &m.CustomerForm
		switch {
		case key.Matches(keyMsg, m.Keys.Esc):
			return setFocus(m, model.FocusList)
		case key.Matches(keyMsg, m.Keys.Submit):
			return submitCustomerForm(m)
		case key.Matches(keyMsg, m.Keys.ResetForm):
			f.Reset()
			return nil
		case key.Matches(keyMsg, m.Keys.AddDraft):
			if !f.AppendDraft() {
				return m.SetStatusMessage("Additional addresses can only be added to new customers", model.StatusBarWarning, m.StatusMessageDuration)
			}
			f.Cursor = f.FieldCount() - len(model.AddressFieldLabels)
			return f.Focus()
		case key.Matches(keyMsg, m.Keys.DropDraft):
			f.DropDraft()
			return nil
		case key.Matches(keyMsg, m.Keys.Tab, m.Keys.Enter), keyMsg.Type == tea.KeyDown:
			return f.Next()
		case key.Matches(keyMsg, m.Keys.ShiftTab), keyMsg.Type == tea.KeyUp:
			return f.Prev()
		}
		return f.Update(keyMsg)

	case model.FocusAddressForm:
		f := &m.AddressForm
		switch {
		case key.Matches(keyMsg, m.Keys.Esc):
			return setFocus(m, model.FocusAddressList)
		case key.Matches(keyMsg, m.Keys.Submit):
			return submitAddressForm(m)
		case key.Matches(keyMsg, m.Keys.ResetForm):
			f.Reset()
			return nil
		case key.Matches(keyMsg, m.Keys.Tab, m.Keys.Enter), keyMsg.Type == tea.KeyDown:
			return f.Next()
		case key.Matches(keyMsg, m.Keys.ShiftTab), keyMsg.Type == tea.KeyUp:
			return f.Prev()
		}
		return f.Update(keyMsg)
	}
	return nil
}

func quit(m *model.Model) tea.Cmd {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye."
	LogInfo(keySubsystem, "Quit requested")
	return tea.Quit
}
