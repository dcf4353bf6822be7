package controller

import (
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/view"
	"crmctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the tea.Model update entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
		// Too frequent or self-referential to log.
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T -- Value: %v", msg, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ActionMsg:
		return m, handleAction(m, msg)

	case model.CustomersLoadedMsg:
		return m, handleCustomersLoaded(m, msg)
	case model.SearchDebounceMsg:
		return m, handleSearchDebounce(m, msg)
	case model.CustomerDetailLoadedMsg:
		return m, handleCustomerDetailLoaded(m, msg)
	case model.CustomerLoadedForEditMsg:
		return m, handleCustomerLoadedForEdit(m, msg)
	case model.AddressLoadedForEditMsg:
		return m, handleAddressLoadedForEdit(m, msg)

	case model.MutationResultMsg:
		if msg.Entity == model.EntityAddress {
			return m, handleAddressMutationResult(m, msg)
		}
		return m, handleCustomerMutationResult(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
		// Fall through to the viewport refresh below.

	default:
		LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type in default case: %T", msg)
		cmds = append(cmds, forwardToFocusedInput(m, msg))
	}

	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if m.ActivityLogDirty || widthChanged {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode != model.ModeLogOverlay || m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleNewLogEntry appends an entry to the activity log. Debug entries are
// only kept when the TUI runs in debug mode.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, logging.FormatEntry(msg.Entry))
	}
	return m
}

// forwardToFocusedInput hands non-key messages such as cursor blinks to the
// text input that currently has focus.
func forwardToFocusedInput(m *model.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case model.FocusSearch:
		m.SearchInput, cmd = m.SearchInput.Update(msg)
	case model.FocusCustomerForm:
		cmd = m.CustomerForm.Update(msg)
	case model.FocusAddressForm:
		cmd = m.AddressForm.Update(msg)
	}
	return cmd
}
