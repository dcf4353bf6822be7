package model

import (
	"time"

	"crmctl/internal/api"
	"crmctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// View is the visible region. Exactly one is shown at a time.
type View int

const (
	ViewList View = iota
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "List"
	case ViewDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeNoticeOverlay
	ModeConfirmOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeNoticeOverlay:
		return "NoticeOverlay"
	case ModeConfirmOverlay:
		return "ConfirmOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus is the pane receiving key input within the visible view.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusCustomerForm
	FocusAddressList
	FocusAddressForm
)

func (f Focus) String() string {
	switch f {
	case FocusList:
		return "List"
	case FocusSearch:
		return "Search"
	case FocusCustomerForm:
		return "CustomerForm"
	case FocusAddressList:
		return "AddressList"
	case FocusAddressForm:
		return "AddressForm"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Esc        key.Binding
	Quit       key.Binding
	Help       key.Binding
	ToggleLog  key.Binding
	Search     key.Binding
	ClearInput key.Binding
	View       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	New        key.Binding
	Back       key.Binding
	AddAddress key.Binding
	Copy       key.Binding
	Submit     key.Binding
	ResetForm  key.Binding
	AddDraft   key.Binding
	DropDraft  key.Binding
	Confirm    key.Binding
	Deny       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Search, k.New, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Each inner slice is one column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab, k.Enter, k.Esc},
		{k.View, k.Edit, k.Delete, k.Copy, k.New, k.Back, k.AddAddress},
		{k.Search, k.ClearInput, k.Submit, k.ResetForm, k.AddDraft, k.DropDraft},
		{k.Help, k.ToggleLog, k.Quit},
	}
}

// Notice is the blocking notification shown after a mutation or a failed load.
type Notice struct {
	Title   string
	Message string
	IsError bool
}

// PendingDelete is the action awaiting y/n confirmation.
type PendingDelete struct {
	Entity Entity
	ID     api.ID
	Label  string
}

// Model is the complete TUI state. Rendering is a pure function of it.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	CurrentView     View
	Focus           Focus
	DebugMode       bool
	QuittingMessage string
	BackendURL      string

	Gateway api.Gateway

	// Per-controller state
	List         ListState
	Detail       DetailState
	CustomerForm CustomerForm
	AddressForm  AddressForm
	SearchInput  textinput.Model

	// Search debounce bookkeeping; SearchSeq advances on every keystroke.
	SearchDebounce time.Duration
	SearchSeq      uint64

	// Overlays
	Notice         Notice
	PendingDelete  PendingDelete
	ConfirmDeletes bool

	// UI State & Output
	ActivityLog           []string
	ActivityLogDirty      bool
	LogViewport           viewport.Model
	LogViewportLastWidth  int
	Spinner               spinner.Model
	Keys                  KeyMap
	Help                  help.Model
	StatusBarMessage      string
	StatusBarMessageType  MessageType
	StatusBarClearCancel  chan struct{}
	StatusMessageDuration time.Duration

	// Logging
	LogChannel <-chan logging.LogEntry
}

// IsLoading reports whether any gateway call owned by the visible view is in flight.
func (m *Model) IsLoading() bool {
	return m.List.Loading || m.Detail.Loading || m.CustomerForm.Loading || m.AddressForm.Loading
}
