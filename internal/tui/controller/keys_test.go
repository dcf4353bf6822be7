package controller

import (
	"testing"
	"time"

	"crmctl/internal/api"
	"crmctl/internal/tui/model"
	"crmctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleKeyMsgGlobal_Overlays(t *testing.T) {
	tests := []struct {
		name     string
		start    model.AppMode
		key      string
		wantMode model.AppMode
	}{
		{"help opens", model.ModeMain, "?", model.ModeHelpOverlay},
		{"help closes with ?", model.ModeHelpOverlay, "?", model.ModeMain},
		{"help closes with esc", model.ModeHelpOverlay, "esc", model.ModeMain},
		{"help ignores other keys", model.ModeHelpOverlay, "n", model.ModeHelpOverlay},
		{"log opens", model.ModeMain, "L", model.ModeLogOverlay},
		{"log closes with L", model.ModeLogOverlay, "L", model.ModeMain},
		{"log closes with esc", model.ModeLogOverlay, "esc", model.ModeMain},
		{"notice dismissed with enter", model.ModeNoticeOverlay, "enter", model.ModeMain},
		{"notice dismissed with esc", model.ModeNoticeOverlay, "esc", model.ModeMain},
		{"notice blocks other keys", model.ModeNoticeOverlay, "n", model.ModeNoticeOverlay},
		{"confirm denied", model.ModeConfirmOverlay, "n", model.ModeMain},
		{"confirm denied with esc", model.ModeConfirmOverlay, "esc", model.ModeMain},
		{"confirm ignores other keys", model.ModeConfirmOverlay, "x", model.ModeConfirmOverlay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &mockGateway{})
			m.CurrentAppMode = tt.start

			m, _ = handleKeyMsgGlobal(m, keyMsg(tt.key))
			assert.Equal(t, tt.wantMode, m.CurrentAppMode)
		})
	}
}

func TestHandleKeyMsgGlobal_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, &mockGateway{})
			m, cmd := handleKeyMsgGlobal(m, keyMsg(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
		})
	}
}

func TestHandleKeyMsgGlobal_CtrlCQuitsFromInput(t *testing.T) {
	m := newTestModel(t, &mockGateway{})
	setFocus(m, model.FocusCustomerForm)

	m, cmd := handleKeyMsgGlobal(m, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t, &mockGateway{})

	m = press(t, m, "tab")
	assert.Equal(t, model.FocusSearch, m.Focus)
	assert.True(t, m.SearchInput.Focused())

	m = press(t, m, "tab")
	assert.Equal(t, model.FocusCustomerForm, m.Focus)
	assert.False(t, m.SearchInput.Focused())
	assert.True(t, m.CustomerForm.Focused())

	m = press(t, m, "esc")
	assert.Equal(t, model.FocusList, m.Focus)

	m = press(t, m, "shift+tab")
	assert.Equal(t, model.FocusCustomerForm, m.Focus)

	m.CurrentView = model.ViewDetail
	setFocus(m, model.FocusAddressList)
	m = press(t, m, "tab")
	assert.Equal(t, model.FocusAddressForm, m.Focus)
	m = press(t, m, "esc")
	assert.Equal(t, model.FocusAddressList, m.Focus)
}

func TestFocusChangesScheduleNoCursorBlink(t *testing.T) {
	m := newTestModel(t, &mockGateway{})

	assert.Nil(t, setFocus(m, model.FocusSearch))
	assert.Nil(t, setFocus(m, model.FocusCustomerForm))

	start := time.Now()
	m = press(t, m, "tab", "tab", "esc")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, model.FocusList, m.Focus)
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(t, &mockGateway{})
	gen := m.List.Begin("")
	m.List.Apply(gen, []api.CustomerSummary{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	m = press(t, m, "j", "down")
	assert.Equal(t, 2, m.List.Selected)
	m = press(t, m, "k")
	assert.Equal(t, 1, m.List.Selected)
	m = press(t, m, "up", "up", "up")
	assert.Equal(t, 0, m.List.Selected)
}

func TestRowActionsOnEmptyListDoNothing(t *testing.T) {
	gw := &mockGateway{}
	m := newTestModel(t, gw)

	for _, k := range []string{"v", "enter", "e", "d"} {
		var cmd tea.Cmd
		m, cmd = handleKeyMsgGlobal(m, keyMsg(k))
		assert.Nil(t, cmd, k)
		assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	}
	gw.AssertExpectations(t)
}

func logEntry(level logging.LogLevel, msg string) logging.LogEntry {
	return logging.LogEntry{Timestamp: time.Now(), Level: level, Subsystem: "Test", Message: msg}
}

func TestHandleNewLogEntry_DebugFiltered(t *testing.T) {
	m := newTestModel(t, &mockGateway{})

	m, _ = Update(model.NewLogEntryMsg{Entry: logEntry(logging.LevelDebug, "hidden")}, m)
	assert.Empty(t, m.ActivityLog)

	m, _ = Update(model.NewLogEntryMsg{Entry: logEntry(logging.LevelInfo, "shown")}, m)
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "shown")
	assert.False(t, m.ActivityLogDirty, "viewport refresh consumes the dirty flag")

	m.DebugMode = true
	m, _ = Update(model.NewLogEntryMsg{Entry: logEntry(logging.LevelDebug, "debug now")}, m)
	assert.Len(t, m.ActivityLog, 2)
}

func TestClearStatusBarMsg(t *testing.T) {
	m := newTestModel(t, &mockGateway{})
	m.SetStatusMessage("hello", model.StatusBarInfo, m.StatusMessageDuration)

	m, _ = Update(model.ClearStatusBarMsg{}, m)
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}
