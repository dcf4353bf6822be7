package controller

import (
	"crmctl/internal/api"
	"crmctl/internal/config"
	"crmctl/internal/tui/model"
	"crmctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the CRM front end.
func NewProgram(
	cfg config.CrmConfig,
	gw api.Gateway,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, gw, debugMode, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, nil
}
