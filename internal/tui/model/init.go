package model

import (
	"errors"
	"time"

	"crmctl/internal/api"
	"crmctl/internal/config"
	"crmctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane / field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane / field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / next field"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search customers"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear search"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v/enter", "view customer"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit selected"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new customer"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b/esc", "back to list"),
		),
		AddAddress: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add address"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selected"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit form"),
		),
		ResetForm: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear form"),
		),
		AddDraft: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add address block"),
		),
		DropDraft: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove address block"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// InitializeModel builds the initial model around gw.
func InitializeModel(cfg config.CrmConfig, gw api.Gateway, debugMode bool, logChannel <-chan logging.LogEntry) (*Model, error) {
	if gw == nil {
		return nil, errors.New("gateway is required")
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search customers"
	search.CharLimit = 128
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	statusDuration := cfg.UI.StatusMessageDuration
	if statusDuration <= 0 {
		statusDuration = 3 * time.Second
	}

	m := &Model{
		CurrentAppMode:        ModeMain,
		CurrentView:           ViewList,
		Focus:                 FocusList,
		DebugMode:             debugMode,
		BackendURL:            cfg.Backend.BaseURL,
		Gateway:               gw,
		CustomerForm:          NewCustomerForm(),
		AddressForm:           NewAddressForm(),
		SearchInput:           search,
		SearchDebounce:        cfg.UI.SearchDebounce,
		ConfirmDeletes:        cfg.UI.DeletesNeedConfirmation(),
		ActivityLog:           make([]string, 0),
		ActivityLogDirty:      true,
		LogViewport:           viewport.New(0, 0),
		Spinner:               s,
		Keys:                  DefaultKeyMap(),
		Help:                  help.New(),
		StatusMessageDuration: statusDuration,
		LogChannel:            logChannel,
	}
	return m, nil
}

// Init starts the spinner and the log listener. The first list fetch is
// issued by the controller so it goes through the generation counter.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, ListenForLogEntriesCmd(m.LogChannel))
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ShowNotice opens the blocking notification overlay.
func (m *Model) ShowNotice(title, message string, isError bool) {
	m.Notice = Notice{Title: title, Message: message, IsError: isError}
	if m.CurrentAppMode != ModeNoticeOverlay {
		m.LastAppMode = m.CurrentAppMode
	}
	m.CurrentAppMode = ModeNoticeOverlay
}

// DismissNotice closes the notification overlay and returns to the mode it
// interrupted.
func (m *Model) DismissNotice() {
	m.Notice = Notice{}
	switch m.LastAppMode {
	case ModeNoticeOverlay, ModeQuitting:
		m.CurrentAppMode = ModeMain
	default:
		m.CurrentAppMode = m.LastAppMode
	}
	m.LastAppMode = ModeMain
}
