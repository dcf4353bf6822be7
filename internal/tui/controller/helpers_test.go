package controller

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"crmctl/internal/api"
	"crmctl/internal/config"
	"crmctl/internal/testing/mockbackend"
	"crmctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cmdTimeout bounds how long settle waits for one command. Nothing the test
// models schedule should come close to it.
const cmdTimeout = 2 * time.Second

func newTestModel(t *testing.T, gw api.Gateway) *model.Model {
	t.Helper()
	m, err := model.InitializeModel(config.GetDefaultConfig(), gw, false, nil)
	require.NoError(t, err)
	// Status timers fire at once; settle drops the clear message so the
	// status text stays visible to assertions.
	m.StatusMessageDuration = time.Millisecond
	m.Width, m.Height = 120, 40
	staticCursors(m)
	return m
}

// staticCursors stops every text input from blinking. A blinking cursor
// schedules a tick on each focus change that settle would otherwise wait out.
func staticCursors(m *model.Model) {
	m.SearchInput.Cursor.SetMode(cursor.CursorStatic)
	for i := range m.CustomerForm.Inputs {
		m.CustomerForm.Inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
	for d := range m.CustomerForm.Drafts {
		for i := range m.CustomerForm.Drafts[d].Inputs {
			m.CustomerForm.Drafts[d].Inputs[i].Cursor.SetMode(cursor.CursorStatic)
		}
	}
	for i := range m.AddressForm.Inputs {
		m.AddressForm.Inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
}

func isCursorBlink(msg tea.Msg) bool {
	_, ok := msg.(cursor.BlinkMsg)
	return ok
}

// newBackendModel wires a model to a fresh in-memory backend.
func newBackendModel(t *testing.T) (*model.Model, *mockbackend.Backend) {
	t.Helper()
	backend := mockbackend.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL)
	require.NoError(t, err)
	return newTestModel(t, client), backend
}

func isGatewayResult(msg tea.Msg) bool {
	switch msg.(type) {
	case model.CustomersLoadedMsg, model.CustomerDetailLoadedMsg,
		model.CustomerLoadedForEditMsg, model.AddressLoadedForEditMsg,
		model.MutationResultMsg, model.SearchDebounceMsg:
		return true
	}
	return false
}

// settle runs cmd and feeds every gateway result back through Update until no
// more gateway work is pending.
func settle(t *testing.T, m *model.Model, cmd tea.Cmd) *model.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		round := queue
		queue = nil

		results := make([]chan tea.Msg, len(round))
		for i, c := range round {
			if c == nil {
				continue
			}
			ch := make(chan tea.Msg, 1)
			results[i] = ch
			go func(c tea.Cmd) { ch <- c() }(c)
		}

		for _, ch := range results {
			if ch == nil {
				continue
			}
			var msg tea.Msg
			select {
			case msg = <-ch:
			case <-time.After(cmdTimeout):
				continue
			}
			if batch, ok := msg.(tea.BatchMsg); ok {
				queue = append(queue, batch...)
				continue
			}
			if isCursorBlink(msg) || !isGatewayResult(msg) {
				continue
			}
			var next tea.Cmd
			m, next = Update(msg, m)
			queue = append(queue, next)
		}
	}
	return m
}

func press(t *testing.T, m *model.Model, keys ...string) *model.Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = Update(keyMsg(k), m)
		staticCursors(m)
		m = settle(t, m, cmd)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func fillCustomer(f *model.CustomerForm, values ...string) {
	for i, v := range values {
		f.SetField(i, v)
	}
}

func fillAddress(f *model.AddressForm, values ...string) {
	for i, v := range values {
		f.SetField(i, v)
	}
}

// mockGateway is a testify mock of api.Gateway.
type mockGateway struct {
	mock.Mock
}

var _ api.Gateway = (*mockGateway)(nil)

func (g *mockGateway) ListCustomers(ctx context.Context, search string) ([]api.CustomerSummary, error) {
	ret := g.Called(ctx, search)
	rows, _ := ret.Get(0).([]api.CustomerSummary)
	return rows, ret.Error(1)
}

func (g *mockGateway) GetCustomer(ctx context.Context, id api.ID) (*api.Customer, error) {
	ret := g.Called(ctx, id)
	c, _ := ret.Get(0).(*api.Customer)
	return c, ret.Error(1)
}

func (g *mockGateway) CreateCustomer(ctx context.Context, in api.CustomerInput) (api.Result, error) {
	ret := g.Called(ctx, in)
	return ret.Get(0).(api.Result), ret.Error(1)
}

func (g *mockGateway) UpdateCustomer(ctx context.Context, id api.ID, in api.CustomerInput) (api.Result, error) {
	ret := g.Called(ctx, id, in)
	return ret.Get(0).(api.Result), ret.Error(1)
}

func (g *mockGateway) DeleteCustomer(ctx context.Context, id api.ID) (api.Result, error) {
	ret := g.Called(ctx, id)
	return ret.Get(0).(api.Result), ret.Error(1)
}

func (g *mockGateway) GetAddress(ctx context.Context, id api.ID) (*api.Address, error) {
	ret := g.Called(ctx, id)
	a, _ := ret.Get(0).(*api.Address)
	return a, ret.Error(1)
}

func (g *mockGateway) CreateAddress(ctx context.Context, in api.AddressInput) (api.Result, error) {
	ret := g.Called(ctx, in)
	return ret.Get(0).(api.Result), ret.Error(1)
}

func (g *mockGateway) UpdateAddress(ctx context.Context, id api.ID, in api.AddressInput) (api.Result, error) {
	ret := g.Called(ctx, id, in)
	return ret.Get(0).(api.Result), ret.Error(1)
}

func (g *mockGateway) DeleteAddress(ctx context.Context, id api.ID) (api.Result, error) {
	ret := g.Called(ctx, id)
	return ret.Get(0).(api.Result), ret.Error(1)
}
